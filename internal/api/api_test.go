package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/feastgame/internal/api"
	"github.com/mcoot/feastgame/internal/api/apierr"
	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/factory"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp(factory.Config{})
	router := api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
	})
	t.Cleanup(app.HubManager.CloseAll)

	return &testServer{t: t, handler: router, app: app}
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

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func (ts *testServer) createSession() response.Session {
	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(ts.t, http.StatusCreated, rr.Code)
	return decode[response.Session](ts.t, rr)
}

// idleVikings puts every viking to work so the feast may start
func (ts *testServer) idleVikings(id string) {
	ctx := context.Background()
	session, err := ts.app.Storage.GetSession(ctx, model.SessionID(id))
	require.NoError(ts.t, err)
	session.VikingsFree = 0
	require.NoError(ts.t, ts.app.Storage.SaveSession(ctx, session))
}

func tileID(s response.Session, shape string) string {
	for _, t := range s.Inventory {
		if string(t.Shape.ID) == shape {
			return string(t.ID)
		}
	}
	return ""
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) apierr.APIError {
	t.Helper()
	assert.Equal(t, status, rr.Code, rr.Body.String())
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.Health](t, rr).Status)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestUnknownRoutes(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown path", http.MethodGet, "/api/v1/nope", http.StatusNotFound, apierr.CodeNotFound},
		{"wrong method", http.MethodPut, "/api/v1/health", http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed},
		{"wrong method on session", http.MethodPatch, "/api/v1/sessions/abc", http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed},
		{"wrong method on session action", http.MethodGet, "/api/v1/sessions/abc/actions", http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(tt.method, tt.path, nil)
			assertError(t, rr, tt.status, tt.code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/catalog/tiles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.Shape](t, rr), 36)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/actions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.Action](t, rr), 28)

	rr = ts.request(http.MethodGet, "/api/v1/catalog/islands", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	islands := decode[[]response.Island](t, rr)
	require.Len(t, islands, 2)
	assert.Equal(t, "faroe", islands[0].ID)
	assert.Equal(t, 8, islands[0].Width)
	assert.Len(t, islands[0].Bonuses, 3)
}

func TestRotate(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		body     any
		status   int
		expected string
	}{
		{"bar by 90", map[string]any{"matrix": [][]int{{1, 1, 1}}, "rotation": 90}, http.StatusOK, `{"matrix":[[1],[1],[1]]}`},
		{"L by 180", map[string]any{"matrix": [][]int{{1, 0}, {1, 1}}, "rotation": 180}, http.StatusOK, `{"matrix":[[1,1],[0,1]]}`},
		{"bad rotation", map[string]any{"matrix": [][]int{{1}}, "rotation": 45}, http.StatusBadRequest, ""},
		{"ragged matrix", map[string]any{"matrix": [][]int{{1, 1}, {1}}, "rotation": 0}, http.StatusBadRequest, ""},
		{"bad cell", map[string]any{"matrix": [][]int{{2}}, "rotation": 0}, http.StatusBadRequest, ""},
		{"empty", map[string]any{"matrix": [][]int{}, "rotation": 0}, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/geometry/rotate", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			if tt.expected != "" {
				assert.JSONEq(t, tt.expected, rr.Body.String())
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createSession()
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.Round)
	assert.Equal(t, "work", created.Phase)
	assert.Equal(t, 6, created.VikingsFree)
	require.Len(t, created.Surfaces, 1)
	assert.Equal(t, -80, created.Surfaces[0].Score)
	assert.Equal(t, "mead", created.Surfaces[0].Cells[2][2].Bonus)
	assert.Equal(t, "income", created.Surfaces[0].Cells[0][3].Bonus)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created.ID, decode[response.Session](t, rr).ID)

	rr = ts.request(http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []model.SessionID{model.SessionID(created.ID)}, decode[response.SessionList](t, rr).Sessions)

	rr = ts.request(http.MethodDelete, "/api/v1/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	assertError(t, ts.request(http.MethodGet, "/api/v1/sessions/"+created.ID, nil), http.StatusNotFound, apierr.CodeSessionNotFound)
	assertError(t, ts.request(http.MethodDelete, "/api/v1/sessions/"+created.ID, nil), http.StatusNotFound, apierr.CodeSessionNotFound)
}

func TestTakeAction(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	path := "/api/v1/sessions/" + s.ID + "/actions"

	rr := ts.request(http.MethodPost, path, map[string]string{"action_id": "mountain_strip"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[response.ActionResponse](t, rr)
	assert.Equal(t, 1, resp.Outcome.Gained.Get(model.ResourceOre))
	assert.Equal(t, 4, resp.Session.VikingsFree)

	assertError(t, ts.request(http.MethodPost, path, map[string]string{}), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertError(t, ts.request(http.MethodPost, path, map[string]string{"action_id": "nope"}), http.StatusNotFound, apierr.CodeActionNotFound)
	assertError(t, ts.request(http.MethodPost, path, map[string]string{"action_id": "build_longhouse"}), http.StatusConflict, apierr.CodeInsufficientResources)
	assertError(t, ts.request(http.MethodPost, path, map[string]string{"action_id": "whaling"}), http.StatusConflict, apierr.CodeMissingWeapon)

	ts.request(http.MethodPost, path, map[string]string{"action_id": "mountain_strip"})
	apiErr := assertError(t, ts.request(http.MethodPost, path, map[string]string{"action_id": "mountain_strip"}), http.StatusConflict, apierr.CodeActionOccupied)
	assert.Contains(t, apiErr.Message, "occupied")
}

func TestRiskFlow(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID

	rr := ts.request(http.MethodPost, base+"/actions", map[string]string{"action_id": "hunting_game"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, decode[response.ActionResponse](t, rr).Outcome.Pending)

	assertError(t, ts.request(http.MethodPost, base+"/actions", map[string]string{"action_id": "prod_wood"}), http.StatusConflict, apierr.CodeRiskPending)
	assertError(t, ts.request(http.MethodPost, base+"/risk/resolve", nil), http.StatusConflict, apierr.CodeRiskNotRolled)

	ts.app.MockRandom.QueueRolls(2)
	rr = ts.request(http.MethodPost, base+"/risk/roll", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, decode[response.RiskRolledResponse](t, rr).Risk.Roll)

	assertError(t, ts.request(http.MethodDelete, base+"/risk", nil), http.StatusConflict, apierr.CodeRiskAlreadyRolled)
	assertError(t, ts.request(http.MethodPost, base+"/risk/resolve", map[string]int{"weapon_used": 5}), http.StatusBadRequest, apierr.CodeInvalidRiskSpend)

	rr = ts.request(http.MethodPost, base+"/risk/resolve", map[string]int{"weapon_used": 1, "modifier_used": 1})
	require.Equal(t, http.StatusOK, rr.Code)
	resolved := decode[response.RiskResolvedResponse](t, rr)
	assert.True(t, resolved.Outcome.Success)
	assert.Nil(t, resolved.Session.Risk)
	assert.Equal(t, 3, resolved.Session.VikingsFree)
}

func TestCancelRisk(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID

	ts.request(http.MethodPost, base+"/actions", map[string]string{"action_id": "hunting_game"})

	rr := ts.request(http.MethodDelete, base+"/risk", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decode[response.Session](t, rr).Risk)

	assertError(t, ts.request(http.MethodDelete, base+"/risk", nil), http.StatusConflict, apierr.CodeNoRiskPending)
}

func TestPlacement(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID
	beans := tileID(s, "beans")

	rr := ts.request(http.MethodPost, base+"/placements/check", map[string]any{"tile_id": beans, "rotation": 90, "x": 0, "y": 0})
	require.Equal(t, http.StatusOK, rr.Code)
	check := decode[response.PlacementCheckResponse](t, rr)
	assert.True(t, check.Valid)
	assert.Equal(t, 3, check.Matrix.Rows())

	rr = ts.request(http.MethodPost, base+"/placements/check", map[string]any{"tile_id": beans, "x": 11, "y": 0})
	require.Equal(t, http.StatusOK, rr.Code)
	check = decode[response.PlacementCheckResponse](t, rr)
	assert.False(t, check.Valid)
	assert.Equal(t, "Out of bounds", check.Reason)

	rr = ts.request(http.MethodPost, base+"/placements", map[string]any{"tile_id": beans, "x": 0, "y": 0})
	require.Equal(t, http.StatusCreated, rr.Code)
	placed := decode[response.PlacementResponse](t, rr)
	assert.Equal(t, model.ShapeID("beans"), placed.Tile.ShapeID)
	assert.Equal(t, -77, placed.Session.Surfaces[0].Score)
	assert.True(t, placed.Session.Surfaces[0].Cells[0][2].Covered)
	assert.Len(t, placed.Session.Inventory, 3)

	apiErr := assertError(t,
		ts.request(http.MethodPost, base+"/placements", map[string]any{"tile_id": tileID(s, "peas"), "x": 1, "y": 0}),
		http.StatusUnprocessableEntity, apierr.CodeInvalidPlacement)
	assert.Equal(t, "Overlaps existing tile", apiErr.Message)

	assertError(t, ts.request(http.MethodPost, base+"/placements", map[string]any{"tile_id": beans}), http.StatusNotFound, apierr.CodeTileNotFound)
	assertError(t, ts.request(http.MethodPost, base+"/placements", map[string]any{"tile_id": tileID(s, "peas"), "surface": "iceland"}), http.StatusNotFound, apierr.CodeSurfaceNotFound)
	assertError(t, ts.request(http.MethodPost, base+"/placements", map[string]any{"tile_id": tileID(s, "peas"), "rotation": 30}), http.StatusBadRequest, apierr.CodeInvalidRotation)
}

func TestSuggestPlacement(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	path := "/api/v1/sessions/" + s.ID + "/placements/suggest"

	rr := ts.request(http.MethodPost, path, map[string]string{"tile_id": tileID(s, "flax")})
	require.Equal(t, http.StatusOK, rr.Code)
	suggestion := decode[response.Suggestion](t, rr)
	assert.Equal(t, "greedy", suggestion.Strategy)
	assert.Equal(t, 0, suggestion.X)
	assert.Equal(t, 0, suggestion.Y)
	assert.Equal(t, 2, suggestion.Relief)

	ts.app.MockRandom.QueueIntn(1)
	rr = ts.request(http.MethodPost, path, map[string]string{"tile_id": tileID(s, "flax"), "strategy": "random"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decode[response.Suggestion](t, rr).X)

	assertError(t, ts.request(http.MethodPost, path, map[string]string{"tile_id": tileID(s, "flax"), "strategy": "clever"}), http.StatusBadRequest, apierr.CodeUnknownStrategy)
	assertError(t, ts.request(http.MethodPost, path, map[string]string{}), http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestSelectSurface(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID

	assertError(t, ts.request(http.MethodPost, base+"/surface", map[string]string{"surface": "faroe"}), http.StatusNotFound, apierr.CodeSurfaceNotFound)

	rr := ts.request(http.MethodPost, base+"/actions", map[string]string{"action_id": "explore_faroe"})
	require.Equal(t, http.StatusOK, rr.Code)
	explored := decode[response.ActionResponse](t, rr).Session
	require.Len(t, explored.Surfaces, 2)
	assert.Equal(t, "faroe", explored.ActiveSurface)

	rr = ts.request(http.MethodPost, base+"/surface", map[string]string{"surface": "home"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "home", decode[response.Session](t, rr).ActiveSurface)
}

func TestFeastFlow(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID

	assertError(t, ts.request(http.MethodPost, base+"/feast", nil), http.StatusConflict, apierr.CodeVikingsRemaining)
	assertError(t, ts.request(http.MethodPost, base+"/feast/finish", nil), http.StatusConflict, apierr.CodeWrongPhase)

	ts.idleVikings(s.ID)
	rr := ts.request(http.MethodPost, base+"/feast", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	started := decode[response.Session](t, rr)
	require.NotNil(t, started.Feast)
	assert.Equal(t, 12, started.Feast.RequiredSize)

	rr = ts.request(http.MethodPost, base+"/feast/table", map[string]string{"tile_id": tileID(s, "beans")})
	require.Equal(t, http.StatusOK, rr.Code)
	assertError(t, ts.request(http.MethodPost, base+"/feast/table", map[string]string{"tile_id": tileID(s, "peas")}), http.StatusUnprocessableEntity, apierr.CodeFeastAdjacency)

	rr = ts.request(http.MethodPost, base+"/feast/table", map[string]string{"tile_id": tileID(s, "mead")})
	require.Equal(t, http.StatusOK, rr.Code)
	served := decode[response.FeastEntryResponse](t, rr)
	assert.Equal(t, 4, served.Session.Feast.Filled)
	assert.Equal(t, 8, served.Session.Feast.Shortfall)

	rr = ts.request(http.MethodDelete, base+"/feast/table", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.ShapeID("mead"), decode[response.FeastEntryResponse](t, rr).Entry.ShapeID)

	assertError(t, ts.request(http.MethodPost, base+"/feast/harvest", map[string]string{"tile_id": tileID(s, "peas"), "kind": "meat"}), http.StatusUnprocessableEntity, apierr.CodeNotAnimal)

	rr = ts.request(http.MethodPost, base+"/feast/finish", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	finished := decode[response.FeastFinishedResponse](t, rr)
	assert.Equal(t, -9, finished.Outcome.Penalty)
	assert.Equal(t, 2, finished.Session.Round)
	assert.Equal(t, "yellow", finished.Session.ActiveColor)
	assert.Equal(t, 7, finished.Session.VikingsFree)
	assert.Nil(t, finished.Session.Feast)

	rr = ts.request(http.MethodGet, base+"/score", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	card := decode[model.ScoreCard](t, rr)
	assert.Equal(t, -80, card.Total)
	assert.Equal(t, 0, card.FeastPenalty)
	assert.False(t, card.Final)
}

func TestHarvest(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()
	base := "/api/v1/sessions/" + s.ID

	rr := ts.request(http.MethodPost, base+"/actions", map[string]string{"action_id": "buy_cow"})
	require.Equal(t, http.StatusOK, rr.Code)
	cow := decode[response.ActionResponse](t, rr).Outcome.Tiles[0]

	ts.idleVikings(s.ID)
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, base+"/feast", nil).Code)

	assertError(t, ts.request(http.MethodPost, base+"/feast/harvest", map[string]string{"tile_id": string(cow.ID), "kind": "wool"}), http.StatusBadRequest, apierr.CodeInvalidHarvest)

	rr = ts.request(http.MethodPost, base+"/feast/harvest", map[string]string{"tile_id": string(cow.ID), "kind": "milk"})
	require.Equal(t, http.StatusOK, rr.Code)
	harvest := decode[response.HarvestResponse](t, rr)
	assert.Equal(t, model.ShapeMilk, harvest.Tile.Shape.ID)
	assert.Equal(t, []model.TileID{cow.ID}, harvest.Session.Feast.Milked)

	assertError(t, ts.request(http.MethodPost, base+"/feast/harvest", map[string]string{"tile_id": string(cow.ID), "kind": "milk"}), http.StatusConflict, apierr.CodeAlreadyMilked)
}

func TestEventStream(t *testing.T) {
	ts := newTestServer(t)
	s := ts.createSession()

	assertError(t, ts.request(http.MethodGet, "/api/v1/sessions/missing/events", nil), http.StatusNotFound, apierr.CodeSessionNotFound)

	// SSE is a long-running connection; end it after the event has had time to arrive
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+s.ID+"/events", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		ts.handler.ServeHTTP(rr, req)
		close(done)
	}()

	// Wait for the client to register with the hub
	require.Eventually(t, func() bool {
		hub := ts.app.HubManager.GetHub(model.SessionID(s.ID))
		return hub != nil && hub.ClientCount() == 1
	}, time.Second, 5*time.Millisecond)

	ts.request(http.MethodPost, "/api/v1/sessions/"+s.ID+"/actions", map[string]string{"action_id": "prod_wood"})
	<-done

	// The last watcher leaving stops the hub
	assert.Nil(t, ts.app.HubManager.GetHub(model.SessionID(s.ID)))

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: action-taken")
	assert.Contains(t, body, `"message":"Took action prod_wood"`)
}
