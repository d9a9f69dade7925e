package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryBool reads an optional boolean query parameter. Absent or
// malformed values stay nil so the backend sees no filter at all, and
// "false" survives as an explicit filter.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryInt reads an optional integer query parameter, zero when absent
// or malformed.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
