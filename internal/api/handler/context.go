package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// ctxSubject returns the token subject injected by the Auth middleware, or
// "anonymous" when the route is not guarded.
func ctxSubject(c echo.Context) string {
	if sub, _ := c.Get("subject").(string); sub != "" {
		return sub
	}
	return "anonymous"
}

// pathName returns the decoded :name path parameter.
func pathName(c echo.Context) string {
	raw := c.Param("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
