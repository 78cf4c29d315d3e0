// Package ctxutil carries per-request values through context.Context.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	routeKey     ctxKey = "route"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RouteSlot receives the route pattern matched by the router. Middleware
// that runs outside the router allocates one before serving and reads it
// afterwards.
type RouteSlot struct {
	Pattern string
}

// WithRouteSlot stores a fresh RouteSlot in the context and returns both.
// A context that already carries a slot is returned unchanged with it.
func WithRouteSlot(ctx context.Context) (context.Context, *RouteSlot) {
	if slot, ok := ctx.Value(routeKey).(*RouteSlot); ok {
		return ctx, slot
	}
	slot := &RouteSlot{}
	return context.WithValue(ctx, routeKey, slot), slot
}

// SetRoute records the matched pattern if the context carries a RouteSlot.
func SetRoute(ctx context.Context, pattern string) {
	if slot, ok := ctx.Value(routeKey).(*RouteSlot); ok {
		slot.Pattern = pattern
	}
}

// RouteFromCtx returns the recorded route pattern, or "" when none was set.
func RouteFromCtx(ctx context.Context) string {
	if slot, ok := ctx.Value(routeKey).(*RouteSlot); ok {
		return slot.Pattern
	}
	return ""
}
