package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/api/metrics"
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// RoleAnonymous marks a request with no resolved session.
const RoleAnonymous = ""

// SessionResolver resolves the caller's role from the inbound request. It is
// consulted once per guarded request; no caching across requests.
type SessionResolver interface {
	Resolve(r *http.Request) (role string, err error)
}

// publicPaths are reachable without a session: exact matches plus the
// meal/provider detail prefixes.
var publicPaths = []string{"/", "/login", "/register", "/meals", "/providers"}

func isPublic(pathname string) bool {
	for _, p := range publicPaths {
		if pathname == p {
			return true
		}
	}
	return strings.HasPrefix(pathname, "/meals/") || strings.HasPrefix(pathname, "/providers/")
}

// guardRule is one (predicate, action) pair of the guard's decision table.
type guardRule struct {
	applies  func(role, pathname string) bool
	redirect string
}

// guardRules is evaluated in order; the first matching rule wins and no
// match lets the request through. Keeping the table flat makes the
// precedence explicit and testable without the web framework.
var guardRules = []guardRule{
	{
		applies: func(role, pathname string) bool {
			return role == RoleAnonymous && !isPublic(pathname)
		},
		redirect: "/login",
	},
	{
		applies: func(role, pathname string) bool {
			return role == domain.RoleAdmin && (strings.HasPrefix(pathname, "/provider") ||
				strings.HasPrefix(pathname, "/cart") ||
				strings.HasPrefix(pathname, "/checkout") ||
				strings.HasPrefix(pathname, "/orders") ||
				pathname == "/profile")
		},
		redirect: "/admin",
	},
	{
		applies: func(role, pathname string) bool {
			return role == domain.RoleProvider && (strings.HasPrefix(pathname, "/admin") ||
				strings.HasPrefix(pathname, "/orders") ||
				pathname == "/cart" ||
				pathname == "/checkout")
		},
		redirect: "/provider/dashboard",
	},
	{
		applies: func(role, pathname string) bool {
			return role == domain.RoleCustomer && (strings.HasPrefix(pathname, "/admin") ||
				strings.HasPrefix(pathname, "/provider"))
		},
		redirect: "/",
	},
}

// Decide evaluates the rule table for a role/path pair. It returns the
// redirect target and true when a rule matches, or "" and false to pass the
// request through.
func Decide(role, pathname string) (string, bool) {
	for _, rule := range guardRules {
		if rule.applies(role, pathname) {
			return rule.redirect, true
		}
	}
	return "", false
}

// guardedPrefixes is the static matcher set the guard applies to. Exact
// entries match the path itself; prefix entries also match sub-paths.
var guardedExact = []string{"/cart", "/checkout", "/profile"}
var guardedPrefixes = []string{"/orders", "/provider", "/admin"}

// Guarded reports whether the guard applies to pathname at all. Paths outside
// the matcher set bypass the guard entirely.
func Guarded(pathname string) bool {
	for _, p := range guardedExact {
		if pathname == p {
			return true
		}
	}
	for _, p := range guardedPrefixes {
		if pathname == p || strings.HasPrefix(pathname, p+"/") {
			return true
		}
	}
	return false
}

// RouteGuard redirects requests to role-inappropriate paths toward a
// role-appropriate landing page. The session is resolved fresh on every
// guarded request; a failed lookup degrades to anonymous, which fails open
// toward requiring login rather than granting access.
func RouteGuard(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pathname := c.Request().URL.Path
			if !Guarded(pathname) {
				return next(c)
			}

			role, err := sessions.Resolve(c.Request())
			if err != nil {
				role = RoleAnonymous
			}

			if target, ok := Decide(role, pathname); ok {
				metrics.GuardRedirectsTotal.WithLabelValues(target).Inc()
				return c.Redirect(http.StatusTemporaryRedirect, target)
			}
			return next(c)
		}
	}
}
