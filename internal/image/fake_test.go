package image

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lanternfly/service/internal/storage"
)

const testBase = "https://acct.blob.core.windows.net/lanternfly-images"

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

type storedObject struct {
	data        []byte
	contentType string
}

// memStore is an in-memory storage.Gateway.
type memStore struct {
	mu      sync.Mutex
	objects map[string]storedObject
	puts    int
	putErr  error
	listErr error
}

var _ storage.Gateway = (*memStore)(nil)

func newMemStore(names ...string) *memStore {
	s := &memStore{objects: map[string]storedObject{}}
	for _, n := range names {
		s.objects[n] = storedObject{contentType: "image/jpeg"}
	}
	return s
}

func (s *memStore) EnsureContainer(context.Context) error { return nil }

func (s *memStore) Put(_ context.Context, name string, r io.Reader, _ int64, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[name] = storedObject{data: data, contentType: contentType}
	return nil
}

func (s *memStore) List(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	names := make([]string, 0, len(s.objects))
	for n := range s.objects {
		names = append(names, n)
	}
	return names, nil
}

func (s *memStore) PublicURL(name string) string {
	return storage.ObjectURL(testBase, name)
}

func newTestService(store storage.Gateway, maxBytes int64) *Service {
	svc := NewService(store, maxBytes, nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

// multipartBody builds a form with one part. An empty filename is sent as filename="".
func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	pw, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = pw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}
