package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix — префикс, под которым каталог загрузок раздаётся по HTTP.
const PublicPrefix = "/uploads/"

// BlobStore — хранилище загруженных файлов (аватары, картинки товаров).
// Save возвращает публичный путь вида "/uploads/<name>"; Remove принимает его же.
type BlobStore interface {
	Save(src io.Reader, originalName string) (string, error)
	Remove(publicPath string) error
}

// FileStore кладёт файлы в локальный каталог со сгенерированными именами.
// Случайные имена (uuid) исключают коллизии при конкурентных загрузках.
type FileStore struct {
	dir string
}

// NewFileStore создаёт каталог при необходимости.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir возвращает каталог хранилища (для http.FileServer).
func (s *FileStore) Dir() string {
	return s.dir
}

// Save записывает файл под новым uuid-именем, сохраняя расширение оригинала.
func (s *FileStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		// недописанный файл в каталоге не оставляем
		_ = dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return PublicPrefix + name, nil
}

// Remove удаляет файл по его публичному пути.
func (s *FileStore) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, PublicPrefix)
	name = filepath.Base(name) // защита от "../" в сохранённом пути
	if name == "" || name == "." {
		return errors.New("empty file name")
	}
	return os.Remove(filepath.Join(s.dir, name))
}
