package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shorts-collector/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dataDir := t.TempDir()
	return NewServer(&config.Config{DataDir: dataDir}), dataDir
}

func seedRun(t *testing.T, dataDir, run, video string) {
	t.Helper()
	videoDir := filepath.Join(dataDir, run, video)
	require.NoError(t, os.MkdirAll(videoDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, run, "resumo.json"), []byte(`{"run_id":"test"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(videoDir, "dados.json"), []byte(`{"video":{}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(videoDir, "transcricao.txt"), []byte("fala pessoal"), 0o644))
}

func doGET(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doGET(s, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListRuns(t *testing.T) {
	s, dataDir := newTestServer(t)
	seedRun(t, dataDir, "coleta_20240305_100000", "video_1_abc")
	seedRun(t, dataDir, "coleta_20240306_090000", "video_1_def")

	rec := doGET(s, "/runs")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Runs []string `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.ElementsMatch(t, []string{"coleta_20240305_100000", "coleta_20240306_090000"}, body.Runs)
}

func TestRunSummary(t *testing.T) {
	s, dataDir := newTestServer(t)
	seedRun(t, dataDir, "coleta_20240305_100000", "video_1_abc")

	rec := doGET(s, "/runs/coleta_20240305_100000/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"run_id":"test"}`, rec.Body.String())
}

func TestListVideos(t *testing.T) {
	s, dataDir := newTestServer(t)
	seedRun(t, dataDir, "coleta_20240305_100000", "video_1_abc")

	rec := doGET(s, "/runs/coleta_20240305_100000/videos")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Videos []string `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, []string{"video_1_abc"}, body.Videos)
}

func TestListVideos_UnknownRun(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doGET(s, "/runs/nope/videos")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArtifactRoutes(t *testing.T) {
	s, dataDir := newTestServer(t)
	seedRun(t, dataDir, "coleta_20240305_100000", "video_1_abc")

	rec := doGET(s, "/runs/coleta_20240305_100000/videos/video_1_abc/data")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"video":{}}`, rec.Body.String())

	rec = doGET(s, "/runs/coleta_20240305_100000/videos/video_1_abc/transcript")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fala pessoal", rec.Body.String())

	// Artifacts the pipeline skipped come back as 404, not empty bodies.
	rec = doGET(s, "/runs/coleta_20240305_100000/videos/video_1_abc/report")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPathTraversalRejected(t *testing.T) {
	s, dataDir := newTestServer(t)
	seedRun(t, dataDir, "coleta_20240305_100000", "video_1_abc")

	rec := doGET(s, "/runs/../videos")
	require.NotEqual(t, http.StatusOK, rec.Code)

	rec = doGET(s, "/runs/coleta_20240305_100000/videos/%2e%2e/data")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSafeName(t *testing.T) {
	for _, bad := range []string{"", ".", "..", "a/b", `a\b`} {
		_, ok := safeName(bad)
		require.False(t, ok, bad)
	}

	name, ok := safeName("video_1_abc")
	require.True(t, ok)
	require.Equal(t, "video_1_abc", name)
}
