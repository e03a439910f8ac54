package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
)

// MaxUploadSize is the ceiling for a single uploaded file.
const MaxUploadSize = 10 * 1024 * 1024 // 10 MB

// allowedUploadTypes covers both the filename extension and the sniffed
// content type. Everything else is rejected before any record is created.
var allowedUploadTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"mp4":  true,
	"webp": true,
}

type MediaService interface {
	List() []*models.MediaItem
	Upload(ctx context.Context, fh *multipart.FileHeader) (*models.MediaItem, error)
	Remove(ctx context.Context, id string) bool
}

type mediaService struct {
	ms    store.MediaStore
	blobs BlobStorage
}

func NewMediaService(ms store.MediaStore, blobs BlobStorage) MediaService {
	return &mediaService{ms: ms, blobs: blobs}
}

func (s *mediaService) List() []*models.MediaItem {
	return s.ms.GetAll()
}

// Upload validates the file, writes the bytes to blob storage under a
// storage-assigned name and records the metadata. Validation failures
// happen before any state changes.
func (s *mediaService) Upload(ctx context.Context, fh *multipart.FileHeader) (*models.MediaItem, error) {
	if fh.Size > MaxUploadSize {
		err := fmt.Errorf("file exceeds the %d byte limit", MaxUploadSize)
		slog.Info(err.Error())
		return nil, err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	if !allowedUploadTypes[ext] {
		err := errors.New("only images and videos are allowed")
		slog.Info(err.Error())
		return nil, err
	}

	file, err := fh.Open()
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// Don't trust the extension alone; sniff the actual content.
	kind, _ := filetype.Match(data)
	if kind == filetype.Unknown || !allowedUploadTypes[kind.Extension] {
		err := errors.New("only images and videos are allowed")
		slog.Info(err.Error())
		return nil, err
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), kind.Extension)
	url, err := s.blobs.Save(ctx, filename, data, kind.MIME.Value)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	item := &models.MediaItem{
		Filename:     filename,
		OriginalName: fh.Filename,
		MimeType:     kind.MIME.Value,
		Size:         fh.Size,
		URL:          url,
	}

	created, err := s.ms.Create(item)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error creating media item: %w", err)
	}
	return created, nil
}

// Remove deletes the record and makes a best-effort attempt at the blob;
// a missing blob never fails the delete.
func (s *mediaService) Remove(ctx context.Context, id string) bool {
	item, ok := s.ms.GetByID(id)
	if !ok {
		return false
	}

	if !s.ms.Delete(id) {
		return false
	}

	if err := s.blobs.Remove(ctx, item.Filename); err != nil {
		slog.Info(err.Error())
	}
	return true
}
