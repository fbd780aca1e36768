package local

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"furnistore/internal/imagestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header, enough for content-type sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestStore_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, "/static/uploads")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), fileHeader(t, "cushion.png", pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// file is on disk under the derived public ID
	publicID := imagestore.PublicID(url)
	onDisk, err := os.ReadFile(filepath.Join(dir, publicID+".png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, onDisk)

	require.NoError(t, store.Delete(context.Background(), publicID))

	_, err = os.Stat(filepath.Join(dir, publicID+".png"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, store.Delete(context.Background(), publicID), ErrImageNotFound)
}

func TestStore_Upload_ExtensionFromMimeWhenMissing(t *testing.T) {
	store, err := New(t.TempDir(), "/static/uploads")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), fileHeader(t, "noext", pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestStore_Upload_RejectsEmptyFile(t *testing.T) {
	store, err := New(t.TempDir(), "/static/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), fileHeader(t, "empty.png", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestStore_Upload_RejectsNonImage(t *testing.T) {
	store, err := New(t.TempDir(), "/static/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), fileHeader(t, "notes.txt", []byte("plain text, not an image")))
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestStore_Delete_RejectsPathTraversal(t *testing.T) {
	store, err := New(t.TempDir(), "/static/uploads")
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete(context.Background(), "../etc/passwd"), ErrInvalidPublicID)
	assert.ErrorIs(t, store.Delete(context.Background(), ""), ErrInvalidPublicID)
}
