package image

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lanternfly/service/internal/response"
	"github.com/lanternfly/service/internal/storage"
)

// Upload is one inbound image file.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Service uploads images to a storage.Gateway and lists them as public URLs.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store    storage.Gateway
	maxBytes int64
	now      func() time.Time
	log      *zap.Logger
}

// NewService creates a new image Service. maxBytes caps a single file.
func NewService(store storage.Gateway, maxBytes int64, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		maxBytes: maxBytes,
		now:      time.Now,
		log:      log,
	}
}

// Upload validates u, stores it under a timestamped name and returns its public URL.
// Checks run in order: EmptyFilename, UnsupportedType, PayloadTooLarge. The body is
// read fully before the write, so an oversized file never reaches storage.
// An object with the same name is overwritten.
func (s *Service) Upload(ctx context.Context, u Upload) (string, error) {
	if u.Filename == "" {
		return "", newError(EmptyFilename, "Empty filename", nil)
	}
	if !IsImage(u.ContentType) {
		return "", newError(UnsupportedType, "Only image/* allowed", nil)
	}

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(u.Body, s.maxBytes+1))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return "", newError(PayloadTooLarge, response.TooLargeMessage(s.maxBytes), err)
		}
		return "", newError(MissingFile, "Could not read file", err)
	}
	if n > s.maxBytes {
		return "", newError(PayloadTooLarge, response.TooLargeMessage(s.maxBytes), nil)
	}

	name := ObjectName(s.now(), u.Filename)
	if err := s.store.Put(ctx, name, &buf, n, u.ContentType); err != nil {
		s.log.Error("upload failed", zap.String("name", name), zap.Error(err))
		return "", newError(StorageFailure, err.Error(), err)
	}

	url := s.store.PublicURL(name)
	s.log.Info("uploaded image", zap.String("url", url))
	return url, nil
}

// Gallery returns the public URL of every stored image, newest first.
func (s *Service) Gallery(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("gallery listing failed", zap.Error(err))
		return nil, newError(StorageFailure, "Failed to load gallery", err)
	}

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, s.store.PublicURL(name))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(urls)))
	return urls, nil
}

// IsImage reports whether contentType declares an image/* media type.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
