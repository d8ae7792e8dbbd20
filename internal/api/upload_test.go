package api

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageSendsSingleImageField(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)

		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)

		mr := multipart.NewReader(r.Body, params["boundary"])
		part, err := mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "image", part.FormName())
		assert.Equal(t, "ella.jpg", part.FileName())

		data, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))

		_, err = mr.NextPart()
		assert.Equal(t, io.EOF, err, "exactly one part expected")

		w.Write([]byte(`{"url":"https://cdn.example/ella.jpg"}`))
	})

	loc, err := c.UploadImage(context.Background(), "ella.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/ella.jpg", loc)
}

func TestUploadImagePathFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"path":"/uploads/ella.jpg"}`))
	})

	loc, err := c.UploadImage(context.Background(), "ella.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ella.jpg", loc)
}

func TestUploadImageFailures(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.UploadImage(context.Background(), "a.jpg", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrDeclined)

	c, _ = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	_, err = c.UploadImage(context.Background(), "a.jpg", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrBadResponse)
}
