package httpapi

import (
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/graphstate/internal/graphrender"
	"github.com/kegliz/graphstate/internal/logger"
	"github.com/kegliz/graphstate/internal/program"
)

// QubitResult is the wire representation of one qubit's measurement
// outcome. Graph and VOP state are never serialized.
type QubitResult struct {
	Qubit  int    `json:"qubit"`
	Result string `json:"result"`
}

// RunScenarioRequest is the optional JSON body for the scenario-run
// endpoint. Seed == 0 means "pick a process-random seed".
type RunScenarioRequest struct {
	Seed int64 `json:"seed"`
}

type RunScenarioResponse struct {
	Scenario string        `json:"scenario"`
	Results  []QubitResult `json:"results"`
}

var (
	badRequestErrorMsg     = "Bad Request - please contact the administrator"
	internalServerErrorMsg = "Internal Server Error - please contact the administrator"
)

func (a *apiServer) getLoggerFromContext(c *gin.Context) (*logger.Logger, error) {
	if loggerInstance, ok := c.Get("logger"); ok {
		if loggerInstance, ok := loggerInstance.(*logger.Logger); ok {
			return loggerInstance, nil
		}
	}
	err := errors.New("logger not found in context")
	a.logger.Error().Err(err).Send()
	c.String(http.StatusInternalServerError, internalServerErrorMsg)
	return nil, err
}

// HealthHandler is the handler for the /health endpoint.
func (a *apiServer) HealthHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}
	l.Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

// ListScenariosHandler lists the fixed named scenarios available to run.
func (a *apiServer) ListScenariosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarioNames()})
}

// RunScenarioHandler is the handler for POST /api/v1/scenarios/:name/run.
// It builds the named fixed graph state, measures it, and returns only the
// per-qubit outcomes, never the underlying graph or VOP labels.
func (a *apiServer) RunScenarioHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}

	name := c.Param("name")

	var req RunScenarioRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			l.Error().Err(err).Msg("binding JSON failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": badRequestErrorMsg})
			return
		}
	}

	results, err := runScenario(name, req.Seed)
	if err != nil {
		l.Warn().Err(err).Str("scenario", name).Msg("scenario run failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RunScenarioResponse{Scenario: name, Results: results})
}

// RenderScenarioHandler is the handler for GET /api/v1/scenarios/:name/render.
// It builds the named scenario's graph state and returns a PNG drawing of
// the graph with VOP labels, before any measurement collapses it.
func (a *apiServer) RenderScenarioHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}

	name := c.Param("name")
	var seed int64
	if raw := c.Query("seed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": badRequestErrorMsg})
			return
		}
	}

	g, err := buildGraph(name, seed)
	if err != nil {
		l.Warn().Err(err).Str("scenario", name).Msg("scenario render failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	img, err := graphrender.New(60).Render(g)
	if err != nil {
		l.Error().Err(err).Str("scenario", name).Msg("rendering graph failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalServerErrorMsg})
		return
	}

	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		l.Error().Err(err).Msg("encoding PNG failed")
	}
}

// RunProgramResponse is the wire representation of a program run: only the
// measurement outcomes it produced, keyed by qubit.
type RunProgramResponse struct {
	Results []QubitResult `json:"results"`
}

// RunProgramHandler is the handler for POST /api/v1/programs/run. The
// request body is a program.Program; the response is the measurement
// outcomes its Measure* gates produced.
func (a *apiServer) RunProgramHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}

	var p program.Program
	if err := c.ShouldBindJSON(&p); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequestErrorMsg})
		return
	}

	if p.NumOfQubits <= 0 || p.NumOfQubits > a.config.Sim.MaxQubits {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("numofqubits must be 1..%d", a.config.Sim.MaxQubits)})
		return
	}

	if err := p.Check(); err != nil {
		l.Warn().Err(err).Msg("program failed validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := p.Run()
	if err != nil {
		l.Error().Err(err).Msg("program run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalServerErrorMsg})
		return
	}

	results := make([]QubitResult, 0, len(res.Outcomes))
	for q, r := range res.Outcomes {
		results = append(results, QubitResult{Qubit: q, Result: r.String()})
	}
	c.JSON(http.StatusOK, RunProgramResponse{Results: results})
}
