package routes

import (
	"net/http"

	"gift_contribution/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// spanEnricher runs after otelgin and tags the request span with the caller
// and the route parameters, marking 5xx responses as errors.
func spanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		if user := c.GetHeader(handlers.HeaderUserID); user != "" {
			span.SetAttributes(attribute.String("user.id", user))
		}
		if id := c.Param("id"); id != "" {
			span.SetAttributes(attribute.String("resource.id", id))
		}
		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
