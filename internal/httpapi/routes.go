package httpapi

import (
	"net/http"

	"github.com/kegliz/graphstate/internal/server/router"
)

func (a *apiServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: a.HealthHandler,
		},
		{
			Name:        "api.scenarios.list",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/scenarios",
			HandlerFunc: a.ListScenariosHandler,
		},
		{
			Name:        "api.scenarios.run",
			Method:      http.MethodPost,
			Pattern:     "/api/v1/scenarios/:name/run",
			HandlerFunc: a.recoverGraphsim(a.RunScenarioHandler),
		},
		{
			Name:        "api.scenarios.render",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/scenarios/:name/render",
			HandlerFunc: a.recoverGraphsim(a.RenderScenarioHandler),
		},
		{
			Name:        "api.programs.run",
			Method:      http.MethodPost,
			Pattern:     "/api/v1/programs/run",
			HandlerFunc: a.recoverGraphsim(a.RunProgramHandler),
		},
	}
}
