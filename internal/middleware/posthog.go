package middleware

import (
	"net/http"
	"strings"

	"github.com/designerabdulhai/hhdcashfinal/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are route prefixes never sent to PostHog.
var untrackedPrefixes = []string{"/health", "/swagger"}

// PosthogMiddleware records one analytics event per successful authenticated request.
// Events are named after the route template, e.g. PUT /api/v1/cashbooks/:cashbook_id/status
// becomes "put_cashbooks_status".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || isUntracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := routeEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		if cashbookID := c.Param("cashbook_id"); cashbookID != "" {
			props["cashbook_id"] = cashbookID
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// routeEventName drops the api prefix and path parameters from a route template.
func routeEventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.TrimPrefix(fullPath, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	return strings.Join(parts, "_")
}
