package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/nhlstats/internal/api"
	"github.com/mcoot/nhlstats/internal/api/apierr"
	"github.com/mcoot/nhlstats/internal/api/response"
	"github.com/mcoot/nhlstats/internal/factory"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		RosterService: app.RosterService,
		Gametimes:     app.Gametimes,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) importRoster(t *testing.T) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"players": factory.TestRoster()})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestImportAndGetPlayer(t *testing.T) {
	ts := newTestServer(t)
	ts.importRoster(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/8478402", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var p response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, model.PlayerID(8478402), p.ID)
	assert.Equal(t, "Connor", p.FirstName)
	assert.Equal(t, "McDavid", p.LastName)
	require.NotNil(t, p.HeightFt)
	assert.Equal(t, 6, *p.HeightFt)
	assert.Equal(t, 27, p.Age)
}

func TestImportReturnsSharedPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.importRoster(t)

	// A second import with different fields does not change the player
	changed := factory.TestRoster()[:1]
	changed[0].Name = "Changed Name"
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"players": changed})
	require.Equal(t, http.StatusCreated, rr.Code)

	var list response.PlayerList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Players, 1)
	assert.Equal(t, "Connor McDavid", list.Players[0].Name)
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.importRoster(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.PlayerList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Players, 3)
	assert.Equal(t, "Leon Draisaitl", list.Players[0].Name)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rr).Code)
}

func TestGetPlayerBadID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestImportInvalidRecord(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{
		"players": []model.PlayerFields{{ID: 5, Name: "No Birthday"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeInvalidArgument, decodeError(t, rr).Code)
	assert.False(t, ts.app.Players.HasKey(5))
}

func TestImportBatchIsAllOrNothing(t *testing.T) {
	ts := newTestServer(t)

	records := factory.TestRoster()
	records[2].BirthDate = "not a date"
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"players": records})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "record 2")

	assert.Equal(t, 0, ts.app.Players.Len())
	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.PlayerList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Players)
}

func TestImportMissingKey(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{
		"players": []model.PlayerFields{{Name: "No Id"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, ts.app.Players.Len())
}

func TestImportEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewBufferString("{"))
	rr = httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeletePlayerKeepsIdentity(t *testing.T) {
	ts := newTestServer(t)
	ts.importRoster(t)
	before := ts.app.Players.FromKey(8478402)

	rr := ts.request(http.MethodDelete, "/api/v1/players/8478402", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/players/8478402", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// The registry still serves the player
	rr = ts.request(http.MethodGet, "/api/v1/players/8478402", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, before, ts.app.Players.FromKey(8478402))
}

func TestGametime(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/gametimes/3/05:14", "/api/v1/gametimes/3/314"} {
		rr := ts.request(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "public, max-age=86400, immutable", rr.Header().Get("Cache-Control"))

		var g response.Gametime
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
		assert.Equal(t, response.Gametime{
			Period:        3,
			PeriodLabel:   "3rd",
			PeriodSeconds: 314,
			PeriodClock:   "05:14",
			Elapsed:       2714,
			ElapsedClock:  "45:14",
		}, g)
	}

	assert.Equal(t, 1, ts.app.Gametimes.Len())
}

func TestGametimeInvalid(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/gametimes/0/05:14", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/gametimes/x/05:14", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/gametimes/1/soon", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Periods past the last one are rejected before anything is cached
	for _, path := range []string{
		"/api/v1/gametimes/9223372036854775/0",
		"/api/v1/gametimes/100/00:00",
		"/api/v1/gametimes/1/-0:30",
		"/api/v1/gametimes/1/+5:00",
	} {
		rr = ts.request(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, path)
		assert.Empty(t, rr.Header().Get("Cache-Control"), path)
	}
	assert.Equal(t, 0, ts.app.Gametimes.Len())
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)
	ts.importRoster(t)
	_ = ts.request(http.MethodGet, "/api/v1/gametimes/1/00:00", nil)

	rr := ts.request(http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats response.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, response.Stats{CachedPlayers: 3, StoredRecords: 3, CachedGametimes: 1}, stats)
}
