package middleware

import (
	"net/http"
	"strconv"

	"github.com/graymanconcepts/prompt-manager/pkg/ctxutil"
)

// unmatchedRoute labels requests the router did not match, keeping raw
// paths out of metric labels.
const unmatchedRoute = "unmatched"

type httpRecorder interface {
	ObserveHTTPRequest(method, route, status string)
}

// Metrics returns middleware that counts requests by method, matched route
// pattern and status code.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			ctx, slot := ctxutil.WithRouteSlot(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			route := slot.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			rec.ObserveHTTPRequest(r.Method, route, strconv.Itoa(sw.status))
		})
	}
}
