package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code0plux/Website/internal/storage"
)

// fakeStore records uploads; any object whose body contains "corrupt"
// is rejected.
type fakeStore struct {
	uploads map[string]string
	keys    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploads: make(map[string]string)}
}

func (f *fakeStore) Upload(ctx context.Context, key string, r io.Reader, opts storage.UploadOptions) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if strings.Contains(string(b), "corrupt") {
		return errors.New("storage rejected object")
	}
	f.uploads[key] = string(b)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string { return "https://cdn.test/" + key }

func (f *fakeStore) Delete(ctx context.Context, key string) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func file(name, body string) File {
	return File{
		Name:        name,
		ContentType: "image/jpeg",
		Size:        int64(len(body)),
		Reader:      strings.NewReader(body),
	}
}

func TestUploadBatchResolvesURLsInSelectionOrder(t *testing.T) {
	store := newFakeStore()
	u := NewUploader(store, discardLogger())

	res := u.UploadBatch(context.Background(), []File{
		file("a.jpg", "bytes of a"),
		file("b.png", "bytes of b"),
	})

	require.Len(t, res.URLs, 2)
	assert.Empty(t, res.Failed)
	assert.Equal(t, "https://cdn.test/"+store.keys[0], res.URLs[0])
	assert.Equal(t, "https://cdn.test/"+store.keys[1], res.URLs[1])
	assert.Equal(t, "bytes of a", store.uploads[store.keys[0]])
	assert.Equal(t, "bytes of b", store.uploads[store.keys[1]])
}

func TestUploadBatchContinuesPastFailures(t *testing.T) {
	store := newFakeStore()
	u := NewUploader(store, discardLogger())

	res := u.UploadBatch(context.Background(), []File{
		file("ok1.jpg", "fine"),
		file("bad.jpg", "corrupt bytes"),
		file("ok2.jpg", "also fine"),
	})

	require.Len(t, res.URLs, 2)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "bad.jpg", res.Failed[0].Name)
	assert.Len(t, store.uploads, 2)
}

func TestObjectKeyFormat(t *testing.T) {
	keyPattern := regexp.MustCompile(`^\d{13}-[0-9a-f-]{36}\.jpg$`)
	key := newObjectKey("photo.JPG")
	assert.Regexp(t, keyPattern, key)

	// Unknown extensions are dropped rather than stored.
	key = newObjectKey("payload.exe")
	assert.NotContains(t, key, ".exe")

	assert.NotEqual(t, newObjectKey("a.png"), newObjectKey("a.png"))
}
