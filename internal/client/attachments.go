package client

import (
	"context"
	"strings"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type attachments struct {
	c *client
}

// UploadURL asks the server for the one-time target URL of a file upload.
// The server answers with an upload document carrying the target in an
// Upload-Url child element.
func (m *attachments) UploadURL(ctx context.Context, module paradesk.Module) (string, paradesk.CallResult) {
	result := m.c.disp.FileUploadURL(ctx, module)
	if result.HasException {
		return "", result
	}

	return uploadURLFromDocument(result.XMLReceived), result
}

// Upload fetches the upload URL for the module and posts the file to it.
func (m *attachments) Upload(ctx context.Context, module paradesk.Module, name, contentType string, data []byte) (*paradesk.Attachment, paradesk.CallResult) {
	if len(data) == 0 {
		return nil, localFailure(paradesk.ErrEmptyAttachment)
	}

	target, result := m.UploadURL(ctx, module)
	if result.HasException {
		return nil, result
	}

	if target == "" {
		return nil, localFailure(paradesk.ErrNoUploadURL)
	}

	result = m.c.disp.FilePerformUpload(ctx, target, name, contentType, data)

	return decodeEntity[paradesk.Attachment](result.XMLReceived, result)
}

func uploadURLFromDocument(doc *paradesk.Document) string {
	root := doc.Root()
	if root == nil {
		return ""
	}

	for _, child := range root.Children {
		if strings.EqualFold(child.XMLName.Local, "Upload-Url") {
			return strings.TrimSpace(child.Text)
		}
	}

	return ""
}
