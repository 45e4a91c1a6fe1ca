package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/api/middleware"
	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// ctxActor builds the policy actor from the identity injected by the Auth
// middleware. A missing role means the middleware did not run (or the route
// is misconfigured); the zero actor is unauthenticated and every policy
// decision on it denies.
func ctxActor(c echo.Context) policy.Actor {
	role, ok := c.Get(middleware.ContextRole).(domain.Role)
	if !ok {
		return policy.Actor{}
	}
	userID, _ := c.Get(middleware.ContextUserID).(uint)
	return policy.Actor{
		UserID:        userID,
		Role:          role,
		Authenticated: true,
	}
}

// pathID parses a numeric :id path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// queryUint parses an optional numeric query parameter; absent or malformed
// values collapse to zero (no filter).
func queryUint(c echo.Context, name string) uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// queryInt parses an optional numeric query parameter with a default.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}
