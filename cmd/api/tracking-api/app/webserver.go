package app

import (
	"github.com/punky97/go-codebase/core/apimono"
	"github.com/punky97/go-codebase/core/transport/transhttp"
	"net/http"
	"tracking-line/cmd/api/tracking-api/app/handlers/tracking"
	line_tracking "tracking-line/pkg/line-tracking"
	"tracking-line/pkg/utils"
)

type server struct {
	dispatcher *line_tracking.Dispatcher
}

var s = &server{}

// NewServer registers the tracking routes. The request tracing id comes from the app's global
// logger middleware, keyed on http.tracing.header.
func NewServer(apimonoApp *apimono.App) {
	apimonoApp.AddRoutes(s.InitTrackingRoutes(apimonoApp.HTTPBasePath))
}

func OnClose() {
}

func (s *server) InitTrackingRoutes(basePath string) transhttp.Routes {
	s.dispatcher = line_tracking.NewDispatcher(line_tracking.DefaultCapabilities())
	s.dispatcher.Endpoint = utils.ViperGetStringWithDefault("http_client.path", line_tracking.LineConversionApiEndpoint)

	return transhttp.Routes{
		transhttp.Route{
			Name:     "Track LINE conversion event",
			Method:   http.MethodPost,
			BasePath: basePath,
			Pattern:  "/track",
			Handler: &tracking.TrackingHandler{
				Dispatcher: s.dispatcher,
				TagCode:    utils.ViperGetStringWithDefault("tracking.code", "main_tag"),
			},
		},
	}
}
