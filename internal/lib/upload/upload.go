// Package upload отвечает за сохранение загружаемых изображений товаров.
//
// Saver кладет файл в каталог <dir>/products под именем на основе uuid
// и возвращает публичный путь, который записывается в карточку товара.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType — файл не является изображением поддерживаемого формата.
var ErrUnsupportedType = errors.New("unsupported image type")

// Расширения по заявленному content-type загружаемой части формы.
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Saver сохраняет изображения товаров на диск.
type Saver struct {
	dir     string // Корневой каталог загрузок
	maxSize int64  // Максимальный размер файла в байтах
}

// NewSaver создает Saver и каталог <dir>/products, если его еще нет.
func NewSaver(dir string, maxSize int64) (*Saver, error) {
	const op = "upload.NewSaver"
	if err := os.MkdirAll(filepath.Join(dir, "products"), 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Saver{dir: dir, maxSize: maxSize}, nil
}

// SaveProductImage сохраняет одну часть multipart-формы как изображение товара
// и возвращает публичный путь вида /uploads/products/<uuid>.<ext>.
func (s *Saver) SaveProductImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	const op = "upload.SaveProductImage"

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrUnsupportedType)
	}
	if s.maxSize > 0 && header.Size > s.maxSize {
		return "", fmt.Errorf("%s: file too large: %d bytes", op, header.Size)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, "products", name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return path.Join("/uploads/products", name), nil
}

// Dir возвращает корневой каталог загрузок для раздачи статики.
func (s *Saver) Dir() string {
	return s.dir
}
