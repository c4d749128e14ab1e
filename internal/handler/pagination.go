package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pageParams reads skip/limit query parameters with the API defaults.
// Unparseable or negative values fall back to the defaults.
func pageParams(c echo.Context) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit
	if v := c.QueryParam("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	return skip, limit
}
