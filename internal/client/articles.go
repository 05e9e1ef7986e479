package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type articles struct {
	c *client
}

func (m *articles) GetDetails(ctx context.Context, articleID int64) (*paradesk.Article, paradesk.CallResult) {
	return getDetail[paradesk.Article](ctx, m.c, paradesk.ModuleArticle.Resource(), articleID, nil)
}

func (m *articles) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Article], paradesk.CallResult) {
	return getList[paradesk.Article](ctx, m.c, paradesk.ModuleArticle.Resource(), query)
}

func (m *articles) Insert(ctx context.Context, article *paradesk.Article) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleArticle, 0, article, nil)

	if result.ObjectID != 0 {
		article.ID = result.ObjectID
	}

	return result
}

func (m *articles) Update(ctx context.Context, article *paradesk.Article) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleArticle, article.ID, article, nil)
}

func (m *articles) Delete(ctx context.Context, articleID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleArticle, articleID, purge)
}

func (m *articles) Schema(ctx context.Context) (*paradesk.Article, paradesk.CallResult) {
	return getSchema[paradesk.Article](ctx, m.c, paradesk.ModuleArticle.Resource())
}

// GetFolder fetches one knowledge-base folder.
func (m *articles) GetFolder(ctx context.Context, folderID int64) (*paradesk.ArticleFolder, paradesk.CallResult) {
	return getDetail[paradesk.ArticleFolder](ctx, m.c, paradesk.EntityArticleFolder.Resource(), folderID, nil)
}

// GetFolderList lists knowledge-base folders.
func (m *articles) GetFolderList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.ArticleFolder], paradesk.CallResult) {
	return getList[paradesk.ArticleFolder](ctx, m.c, paradesk.EntityArticleFolder.Resource(), query)
}

// DeleteFolder removes a knowledge-base folder. Folder deletes are always
// a purge; entities have no trash.
func (m *articles) DeleteFolder(ctx context.Context, folderID int64) paradesk.CallResult {
	result := m.c.disp.EntityDelete(ctx, paradesk.EntityArticleFolder, folderID)

	if !result.HasException {
		m.c.invalidate(ctx, paradesk.EntityArticleFolder.Resource(), folderID)
	}

	return result
}
