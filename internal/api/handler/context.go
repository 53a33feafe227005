package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware.
// Role must be non-empty, and a provider token must carry a provider_id.
func ctxClaims(c echo.Context) (role, userID, providerID string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	providerID, _ = c.Get("provider_id").(string)
	if role == domain.RoleProvider && providerID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing provider identity")
	}

	return role, userID, providerID, nil
}

// cartIdentity returns the cart identity for the request: the authenticated
// user's ID, or the guest identity when the caller is anonymous.
func cartIdentity(c echo.Context) string {
	if userID, _ := c.Get("user_id").(string); userID != "" {
		return userID
	}
	return domain.GuestIdentity
}
