package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the router serves the uploads directory on.
const PublicPrefix = "/uploads"

var (
	ErrUnsupportedExtension = errors.New("unsupported photo extension")
	ErrForeignURL           = errors.New("url does not belong to photo storage")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// LocalPhotoStorage writes photos under root/<occurrence id>/<uuid><ext>.
// The client-supplied filename only contributes its extension.
type LocalPhotoStorage struct {
	root string
}

var _ interfaces.IPhotoStorage = (*LocalPhotoStorage)(nil)

func NewLocalPhotoStorage(root string) (*LocalPhotoStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalPhotoStorage{root: root}, nil
}

func (s *LocalPhotoStorage) Root() string {
	return s.root
}

func (s *LocalPhotoStorage) Save(ctx context.Context, occurrenceID int64, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	dir := filepath.Join(s.root, strconv.FormatInt(occurrenceID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return PublicPrefix + "/" + strconv.FormatInt(occurrenceID, 10) + "/" + name, nil
}

// Delete removes the file behind url. A file that is already gone is not an
// error.
func (s *LocalPhotoStorage) Delete(ctx context.Context, url string) error {
	path, err := s.pathFor(url)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalPhotoStorage) pathFor(url string) (string, error) {
	rel, ok := strings.CutPrefix(url, PublicPrefix+"/")
	if !ok {
		return "", ErrForeignURL
	}
	parts := strings.Split(rel, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || parts[1] == "." || parts[1] == ".." {
		return "", ErrForeignURL
	}
	if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
		return "", ErrForeignURL
	}
	return filepath.Join(s.root, parts[0], parts[1]), nil
}
