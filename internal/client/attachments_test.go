package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

func TestAttachments_UploadURL(t *testing.T) {
	var target string

	c, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/12345/0/Ticket/upload", r.URL.Path)
		_, _ = w.Write([]byte(`<upload><Upload-Url>` + target + `</Upload-Url></upload>`))
	}, nil)
	target = server.URL + "/files/upload/abc123"

	got, result := c.Attachments().UploadURL(context.Background(), paradesk.ModuleTicket)

	assert.False(t, result.HasException)
	assert.Equal(t, target, got)
}

func TestAttachments_UploadPostsFramedFile(t *testing.T) {
	var uploadBody string

	c, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/files/") {
			body, _ := io.ReadAll(r.Body)
			uploadBody = string(body)

			assert.Equal(t, "text/plain; boundary:--ParaBoundary", r.Header.Get("Content-Type"))
			_, _ = w.Write([]byte(`<attachment guid="f00-guid" href="/download/f00"><Name>notes.txt</Name></attachment>`))

			return
		}

		_, _ = w.Write([]byte(`<upload><Upload-Url>http://` + r.Host + `/files/upload/abc</Upload-Url></upload>`))
	}, nil)
	_ = server

	attachment, result := c.Attachments().Upload(context.Background(),
		paradesk.ModuleTicket, "notes.txt", "text/plain", []byte("hello"))

	assert.False(t, result.HasException)
	require.NotNil(t, attachment)
	assert.Equal(t, "f00-guid", attachment.GUID)
	assert.Equal(t, "notes.txt", attachment.Name)

	assert.Contains(t, uploadBody, "--ParaBoundary\r\n")
	assert.Contains(t, uploadBody, `Content-Disposition: text/plain; name="notes.txt"; filename="notes.txt"`)
	assert.Contains(t, uploadBody, "\r\nhello\r\n--ParaBoundary--")
}

func TestAttachments_UploadRejectsEmptyData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, nil)

	attachment, result := c.Attachments().Upload(context.Background(),
		paradesk.ModuleTicket, "empty.bin", "application/octet-stream", nil)

	assert.Nil(t, attachment)
	assert.True(t, result.HasException)
	assert.Equal(t, paradesk.ErrEmptyAttachment.Error(), result.ExceptionDetails)
}

func TestAttachments_UploadFailsWhenNoURLReturned(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<upload/>`))
	}, nil)

	attachment, result := c.Attachments().Upload(context.Background(),
		paradesk.ModuleTicket, "notes.txt", "text/plain", []byte("hello"))

	assert.Nil(t, attachment)
	assert.True(t, result.HasException)
	assert.Equal(t, paradesk.ErrNoUploadURL.Error(), result.ExceptionDetails)
}
