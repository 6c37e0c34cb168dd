package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"microtwit/internal/model"
	"microtwit/internal/repository"
	"microtwit/internal/storage"
)

// MediaService handles the upload half of the two-phase media flow: bytes
// go to the blob store and a standalone media record is created; the record
// is attached to a tweet later, at tweet-creation time.
type MediaService struct {
	store     storage.BlobStore
	mediaRepo repository.MediaRepository
}

func NewMediaService(store storage.BlobStore, mediaRepo repository.MediaRepository) *MediaService {
	return &MediaService{
		store:     store,
		mediaRepo: mediaRepo,
	}
}

// Upload validates the bytes, stages them in a scratch file, transfers them
// to the blob store and creates the media record. The scratch file is
// removed on every exit path.
func (s *MediaService) Upload(ctx context.Context, userID int64, data []byte) (*model.Media, error) {
	if len(data) == 0 {
		return nil, model.ErrEmptyFile
	}
	if len(data) > model.MaxMediaSize {
		return nil, model.ErrFileTooLarge
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown || !filetype.IsImage(data) {
		return nil, model.ErrUnsupportedMediaType
	}

	key := fmt.Sprintf("%d/%s.%s", userID, uuid.NewString(), kind.Extension)

	var url, path string
	err = withScratchFile(data, func(scratch string) error {
		var storeErr error
		url, path, storeErr = s.store.Store(ctx, key, scratch, kind.MIME.Value)
		return storeErr
	})
	if err != nil {
		return nil, err
	}

	return s.mediaRepo.CreateRecord(ctx, url, path)
}

// DeleteFile removes the backing blob best-effort and returns a descriptive
// status string rather than an error, so a missing file never fails the
// surrounding tweet-delete flow.
func (s *MediaService) DeleteFile(ctx context.Context, path string) string {
	err := s.store.Delete(ctx, path)
	switch {
	case err == nil:
		return fmt.Sprintf("File '%s' deleted successfully.", path)
	case errors.Is(err, storage.ErrNotExist):
		return fmt.Sprintf("File '%s' does not exist.", path)
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

// withScratchFile writes data to a temp file, runs fn against its path and
// guarantees removal of the file on every exit path.
func withScratchFile(data []byte, fn func(path string) error) error {
	f, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close scratch file: %w", err)
	}

	return fn(path)
}
