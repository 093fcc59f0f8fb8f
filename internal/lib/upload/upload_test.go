package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartRequest собирает запрос с одной файловой частью и заданным content-type части.
func multipartRequest(t *testing.T, fieldName, fileName, contentType string, data []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSaver_SaveProductImage(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir, 1<<20)
	require.NoError(t, err)

	req := multipartRequest(t, "image", "photo.png", "image/png", []byte("fake png bytes"))
	require.NoError(t, req.ParseMultipartForm(1<<20))

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	publicPath, err := saver.SaveProductImage(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(publicPath, ".png"))

	storedName := filepath.Base(publicPath)
	data, err := os.ReadFile(filepath.Join(dir, "products", storedName))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

func TestSaver_SaveProductImage_UnsupportedType(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir, 1<<20)
	require.NoError(t, err)

	req := multipartRequest(t, "image", "script.sh", "application/x-sh", []byte("#!/bin/sh"))
	require.NoError(t, req.ParseMultipartForm(1<<20))

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	_, err = saver.SaveProductImage(file, header)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestSaver_SaveProductImage_TooLarge(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir, 4)
	require.NoError(t, err)

	req := multipartRequest(t, "image", "photo.png", "image/png", []byte("more than four bytes"))
	require.NoError(t, req.ParseMultipartForm(1<<20))

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	_, err = saver.SaveProductImage(file, header)
	assert.Error(t, err)
}

func TestSaver_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir, 1<<20)
	require.NoError(t, err)

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := multipartRequest(t, "image", "photo.png", "image/png", []byte("fake png bytes"))
		require.NoError(t, req.ParseMultipartForm(1<<20))
		file, header, err := req.FormFile("image")
		require.NoError(t, err)

		publicPath, err := saver.SaveProductImage(file, header)
		_ = file.Close()
		require.NoError(t, err)

		assert.False(t, paths[publicPath], "file names must be unique")
		paths[publicPath] = true
	}
}
