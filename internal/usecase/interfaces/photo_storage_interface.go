package interfaces

import (
	"context"
	"io"
)

// IPhotoStorage keeps the files behind occurrence photos.
type IPhotoStorage interface {
	Save(ctx context.Context, occurrenceID int64, filename string, content io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}
