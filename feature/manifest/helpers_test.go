package manifest_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"manifest-sync/feature/manifest"
	"manifest-sync/feature/manifest/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

// fixtureTable holds one Legendary weapon whose socket points at a plug set listing plug 111,
// plus a Common weapon that must never contribute plugs.
const fixtureTable = `{
  "1000": {
    "itemType": 3,
    "itemTypeDisplayName": "Hand Cannon",
    "defaultDamageType": 1,
    "displayProperties": {"name": "Fatebringer", "description": "Fate is sealed.", "icon": "/fb.png"},
    "inventory": {"tierType": 5, "tierTypeName": "Legendary"},
    "sockets": {"socketEntries": [
      {"socketTypeHash": 5, "singleInitialItemHash": 0, "reusablePlugItems": [], "reusablePlugSetHash": 2000}
    ]}
  },
  "2000": {"reusablePlugItems": [{"plugItemHash": 111}]},
  "111": {
    "itemType": 19,
    "itemTypeDisplayName": "Trait",
    "displayProperties": {"name": "Explosive Payload", "icon": "/ep.png"},
    "plug": {"plugCategoryIdentifier": "frames"}
  },
  "3000": {
    "itemType": 3,
    "displayProperties": {"name": "Common Gun"},
    "inventory": {"tierType": 2},
    "sockets": {"socketEntries": [{"singleInitialItemHash": 222}]}
  },
  "222": {"itemType": 19, "displayProperties": {"name": "Common Perk"}}
}`

const (
	itemTablePath    = "/common/destiny2_content/json/en/DestinyInventoryItemDefinition-v1.json"
	plugSetTablePath = "/common/destiny2_content/json/en/DestinyPlugSetDefinition-v1.json"
)

func mustTable(t *testing.T, raw string) *models.Table {
	t.Helper()
	table, err := models.DecodeTable(strings.NewReader(raw))
	require.NoError(t, err)
	return table
}

func indexJSON(version string, tables map[string]string) string {
	var b strings.Builder
	b.WriteString(`{"ErrorCode": 1, "ErrorStatus": "Success", "Message": "Ok", "Response": {"version": "`)
	b.WriteString(version)
	b.WriteString(`", "jsonWorldComponentContentPaths": {"en": {`)
	first := true
	for name, p := range tables {
		if !first {
			b.WriteString(",")
		}
		first = false
		b.WriteString(`"` + name + `": "` + p + `"`)
	}
	b.WriteString(`}}}}`)
	return b.String()
}

// remote serves a fake manifest host from a path -> (status, body) map.
type remote struct {
	mu       sync.Mutex
	routes   map[string]route
	apiKeys  []string
	requests []string
}

type route struct {
	status int
	body   string
}

func newRemote(t *testing.T, routes map[string]route) (*remote, *httptest.Server) {
	t.Helper()
	r := &remote{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.apiKeys = append(r.apiKeys, req.Header.Get("X-API-Key"))
		r.requests = append(r.requests, req.URL.Path)
		rt, ok := r.routes[req.URL.Path]
		r.mu.Unlock()
		if !ok {
			http.NotFound(w, req)
			return
		}
		w.WriteHeader(rt.status)
		_, _ = io.WriteString(w, rt.body)
	}))
	t.Cleanup(srv.Close)
	return r, srv
}

func testConfig(baseURL string) manifest.Config {
	return manifest.Config{
		ApiKey:         "test-key",
		BaseURL:        baseURL,
		Locale:         "en",
		Table:          "DestinyInventoryItemDefinition",
		PlugSetTable:   "DestinyPlugSetDefinition",
		Prefix:         "manifest",
		OutputShape:    "slim",
		TimeoutSeconds: 5,
	}
}

// memoryStore is an in-memory storage.Client recording the order of uploads.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    []string
	failPut map[string]error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, failPut: map[string]error{}}
}

func (m *memoryStore) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return true, nil
}

func (m *memoryStore) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return nil
}

func (m *memoryStore) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failPut[objectName]; err != nil {
		return minio.UploadInfo{}, err
	}
	m.objects[objectName] = data
	m.puts = append(m.puts, objectName)
	return minio.UploadInfo{Key: objectName, Size: int64(len(data))}, nil
}

func (m *memoryStore) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	m.mu.Lock()
	data, ok := m.objects[objectName]
	m.mu.Unlock()
	if !ok {
		return io.NopCloser(errReader{minio.ErrorResponse{Code: "NoSuchKey"}}), nil
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryStore) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[objectName]
	if !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return minio.ObjectInfo{Key: objectName, Size: int64(len(data))}, nil
}

func (m *memoryStore) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan minio.ObjectInfo, len(m.objects))
	for key := range m.objects {
		if strings.HasPrefix(key, opts.Prefix) {
			ch <- minio.ObjectInfo{Key: key}
		}
	}
	close(ch)
	return ch
}

func (m *memoryStore) get(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[key]
}

func (m *memoryStore) putOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.puts...)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}
