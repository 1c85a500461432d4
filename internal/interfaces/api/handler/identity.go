package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// IdentityResolver yields the authenticated user behind a request. The real
// identity service lives outside this system; the default resolver trusts the
// X-User-ID header set by the gateway in front of it.
type IdentityResolver interface {
	CurrentUser(c echo.Context) (uint, error)
}

type headerIdentity struct{}

// NewHeaderIdentity creates an IdentityResolver reading X-User-ID.
func NewHeaderIdentity() IdentityResolver {
	return headerIdentity{}
}

func (headerIdentity) CurrentUser(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get("X-User-ID")
	if raw == "" {
		return 0, fmt.Errorf("missing X-User-ID header")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid X-User-ID header %q", raw)
	}
	return uint(id), nil
}
