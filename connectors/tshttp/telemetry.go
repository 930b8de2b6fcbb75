package tshttp

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func WithTelemetry(h http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(h, operation)
}
