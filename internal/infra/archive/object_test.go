package archive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/pkg/logger"
)

// fakeS3 answers bucket checks and object uploads for a path-style bucket.
type fakeS3 struct {
	healthy     atomic.Bool
	mu          sync.Mutex
	bucketHeads int
	objects     map[string][]byte
}

func newFakeS3(t *testing.T) (*fakeS3, *httptest.Server) {
	t.Helper()
	fake := &fakeS3{objects: make(map[string][]byte)}
	fake.healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(srv.Close)
	return fake, srv
}

func (f *fakeS3) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Method == http.MethodHead {
		f.bucketHeads++
	}
	if !f.healthy.Load() {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if r.Method == http.MethodPut && strings.Count(strings.Trim(r.URL.Path, "/"), "/") > 0 {
		body, _ := io.ReadAll(r.Body)
		f.objects[strings.TrimPrefix(r.URL.Path, "/runready/")] = body
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	}
	w.WriteHeader(http.StatusOK)
}

func (f *fakeS3) object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	return data, ok
}

func (f *fakeS3) heads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bucketHeads
}

func newTestObjectArchive(t *testing.T, endpoint string) *ObjectArchive {
	t.Helper()
	a, err := NewObjectArchive(ObjectConfig{
		Endpoint:  endpoint,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "runready",
		Region:    "us-east-1",
	}, logger.Discard())
	require.NoError(t, err)
	return a
}

func TestObjectArchivePutUploadsPayload(t *testing.T) {
	fake, srv := newFakeS3(t)
	a := newTestObjectArchive(t, srv.URL)

	key, err := a.Put(context.Background(), sampleForecast())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "forecasts/2025/06/03/50.45,30.52/"))

	data, ok := fake.object(key)
	require.True(t, ok)
	require.JSONEq(t, `{"hourly":{}}`, string(data))

	_, err = a.Put(context.Background(), sampleForecast())
	require.NoError(t, err)
	require.Equal(t, 1, fake.heads())
}

func TestObjectArchiveCancelledRequestDoesNotDisableArchive(t *testing.T) {
	fake, srv := newFakeS3(t)
	a := newTestObjectArchive(t, srv.URL)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Put(cancelled, sampleForecast())
	require.Error(t, err)

	key, err := a.Put(context.Background(), sampleForecast())
	require.NoError(t, err)
	_, ok := fake.object(key)
	require.True(t, ok)
}

func TestObjectArchiveRetriesFailedBucketCheck(t *testing.T) {
	fake, srv := newFakeS3(t)
	a := newTestObjectArchive(t, srv.URL)

	fake.healthy.Store(false)
	_, err := a.Put(context.Background(), sampleForecast())
	require.ErrorContains(t, err, "ensure bucket runready")

	fake.healthy.Store(true)
	key, err := a.Put(context.Background(), sampleForecast())
	require.NoError(t, err)
	_, ok := fake.object(key)
	require.True(t, ok)
	require.Equal(t, 2, fake.heads())
}
