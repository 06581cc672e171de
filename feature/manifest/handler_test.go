package manifest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"manifest-sync/feature/manifest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, src manifest.Source, store *memoryStore, history *manifest.History) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := manifest.NewHandler(newTestService(t, src, store, history), zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleSync(t *testing.T) {
	t.Run("Processes", func(t *testing.T) {
		store := newMemoryStore()
		app := setupTestApp(t, &stubSource{version: "v1", table: fixtureTable}, store, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/manifest/sync", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, "v1", body["remote_version"])
		assert.Equal(t, false, body["skipped"])
		assert.Equal(t, float64(1), body["weapons"])
	})

	t.Run("ForceQuery", func(t *testing.T) {
		store := newMemoryStore()
		store.objects["manifest/version.txt"] = []byte("v1")
		app := setupTestApp(t, &stubSource{version: "v1", table: fixtureTable}, store, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/manifest/sync?force=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp.Body)["skipped"])
	})

	t.Run("RemoteUnavailable", func(t *testing.T) {
		src := &stubSource{indexErr: fmt.Errorf("%w: status 503", manifest.ErrManifestUnavailable)}
		app := setupTestApp(t, src, newMemoryStore(), nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/manifest/sync", nil))
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)
		assert.Equal(t, manifest.StageIndex, decodeBody(t, resp.Body)["stage"])
	})

	t.Run("WriteFailure", func(t *testing.T) {
		store := newMemoryStore()
		store.failPut["manifest/weapons.json"] = fmt.Errorf("disk full")
		app := setupTestApp(t, &stubSource{version: "v1", table: fixtureTable}, store, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/manifest/sync", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleStatus(t *testing.T) {
	store := newMemoryStore()
	store.objects["manifest/version.txt"] = []byte("v7")
	app := setupTestApp(t, &stubSource{}, store, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/manifest/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "v7", body["stored_version"])
	assert.Equal(t, false, body["history_enabled"])
}

func TestHandleRuns(t *testing.T) {
	t.Run("HistoryDisabled", func(t *testing.T) {
		app := setupTestApp(t, &stubSource{}, newMemoryStore(), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/manifest/runs", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Lists", func(t *testing.T) {
		history := newSQLiteHistory(t)
		store := newMemoryStore()
		svc := newTestService(t, &stubSource{version: "v1", table: fixtureTable}, store, history)
		_, err := svc.Run(context.Background(), manifest.RunOptions{})
		require.NoError(t, err)

		app := fiber.New()
		manifest.NewHandler(svc, zap.NewNop()).RegisterRoutes(app)

		resp, err := app.Test(httptest.NewRequest("GET", "/manifest/runs?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var runs []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "v1", runs[0]["remote_version"])
	})
}

func TestHandleArtifacts(t *testing.T) {
	store := newMemoryStore()
	app := setupTestApp(t, &stubSource{version: "v1", table: fixtureTable}, store, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/manifest/weapons", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/manifest/sync", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/manifest/weapons", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	var weapons []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&weapons))
	require.Len(t, weapons, 1)
	assert.Equal(t, "Fatebringer", weapons[0]["name"])

	resp, err = app.Test(httptest.NewRequest("GET", "/manifest/plugs/111", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Explosive Payload", decodeBody(t, resp.Body)["name"])

	resp, err = app.Test(httptest.NewRequest("GET", "/manifest/plugs/0111", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "111", decodeBody(t, resp.Body)["hash"])

	resp, err = app.Test(httptest.NewRequest("GET", "/manifest/plugs/222", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/manifest/plugs/not-a-hash", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
