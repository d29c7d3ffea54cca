package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "uploads"))
	assert.NoError(t, err)

	path, err := s.Save(strings.NewReader("png-bytes"), "avatar.png")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, PublicPrefix))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// файл действительно лежит в каталоге
	onDisk := filepath.Join(s.Dir(), strings.TrimPrefix(path, PublicPrefix))
	b, err := os.ReadFile(onDisk)
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))

	assert.NoError(t, s.Remove(path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// повторное удаление — ошибка, но без паники (best-effort у вызывающего)
	assert.Error(t, s.Remove(path))
}

// Имена генерируются уникальными даже для одинаковых исходных файлов
func TestFileStore_UniqueNames(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	p1, err := s.Save(strings.NewReader("a"), "img.jpg")
	assert.NoError(t, err)
	p2, err := s.Save(strings.NewReader("a"), "img.jpg")
	assert.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read broke") }

// При обрыве чтения недописанный файл не должен остаться в каталоге
func TestFileStore_SaveCleansUpOnCopyError(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	_, err = s.Save(failingReader{}, "img.jpg")
	assert.Error(t, err)

	entries, err := os.ReadDir(s.Dir())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_RemoveRejectsTraversal(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	// путь с ../ не должен выйти за пределы каталога
	err = s.Remove(PublicPrefix + "../secret")
	assert.Error(t, err)
}
