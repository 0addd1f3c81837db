package codename

import "github.com/punky97/go-codebase/core/apimono"

var (
	TrackingApi = apimono.NewApiCodeName("tracking-api", "/v1/tracking")
)
