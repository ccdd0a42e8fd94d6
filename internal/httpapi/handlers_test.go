package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/graphstate/internal/config"
	"github.com/kegliz/graphstate/internal/logger"
	"github.com/kegliz/graphstate/internal/server/router"
)

func testServer(t *testing.T) *apiServer {
	t.Helper()
	l := logger.NewLogger(logger.LoggerOptions{})
	r := router.NewRouter(router.RouterOptions{Logger: l})
	return newAPIServer(apiServerOptions{
		logger:  l,
		router:  r,
		config:  &config.Config{Sim: config.SimConfig{MaxQubits: 24}},
		version: "test",
	})
}

func TestHealthHandler(t *testing.T) {
	a := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestListScenariosHandler(t *testing.T) {
	a := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRunScenarioHandlerUnknownScenario(t *testing.T) {
	a := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios/nope/run", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunScenarioHandlerBell(t *testing.T) {
	a := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios/bell/run", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scenario":"bell"`)
}

func TestRunProgramHandlerBell(t *testing.T) {
	a := testServer(t)

	body := map[string]interface{}{
		"numofqubits": 2,
		"steps": []map[string]interface{}{
			{"gates": []map[string]interface{}{
				{"name": "H", "targets": []int{0}},
				{"name": "H", "targets": []int{1}},
			}},
			{"gates": []map[string]interface{}{{"name": "CZ", "targets": []int{1}, "controls": []int{0}}}},
			{"gates": []map[string]interface{}{{"name": "H", "targets": []int{1}}}},
			{"gates": []map[string]interface{}{
				{"name": "MZ", "targets": []int{0}},
				{"name": "MZ", "targets": []int{1}},
			}},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp RunProgramResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, resp.Results[0].Result, resp.Results[1].Result)
}

// TestRunProgramHandlerRecoversOutOfRangePanic exercises a program that
// passes program.Check (which only bounds the maximum qubit index touched,
// not the minimum) but panics inside graphsim on a negative index. The
// recoverGraphsim middleware must translate that into a 400, not a bare
// connection reset.
func TestRunProgramHandlerRecoversOutOfRangePanic(t *testing.T) {
	a := testServer(t)

	body := map[string]interface{}{
		"numofqubits": 2,
		"steps": []map[string]interface{}{
			{"gates": []map[string]interface{}{{"name": "H", "targets": []int{-1}}}},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunProgramHandlerRejectsInvalidProgram(t *testing.T) {
	a := testServer(t)

	body := map[string]interface{}{
		"numofqubits": 1,
		"steps": []map[string]interface{}{
			{"gates": []map[string]interface{}{{"name": "H", "targets": []int{5}}}},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
