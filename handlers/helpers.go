package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"school-attendance/apperrors"
)

// writeError is the single translation point from service failures to HTTP.
func writeError(c echo.Context, err error) error {
	var nf *apperrors.NotFoundError
	var dk *apperrors.DuplicateKeyError
	var da *apperrors.DuplicateAttendanceError

	switch {
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, map[string]any{"error": nf.Error()})
	case errors.As(err, &da):
		return c.JSON(http.StatusConflict, map[string]any{"error": da.Error()})
	case errors.As(err, &dk):
		return c.JSON(http.StatusConflict, map[string]any{"error": dk.Error()})
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
}

func bindAndValidate(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	return c.Validate(v)
}

// queryUint reads an optional numeric query parameter; nil when absent.
func queryUint(c echo.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			map[string]any{"error": fmt.Sprintf("invalid %s: %q", name, raw)})
	}
	v := uint(n)
	return &v, nil
}

// queryStr reads an optional query parameter; nil when absent.
func queryStr(c echo.Context, name string) *string {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func pathID(c echo.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "invalid id"})
	}
	return uint(n), nil
}
