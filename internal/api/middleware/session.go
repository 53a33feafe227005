package middleware

import "net/http"

// JWTSessionResolver resolves the caller's role from the session token
// carried in the request (cookie or bearer header).
type JWTSessionResolver struct {
	jwtSecret string
}

func NewJWTSessionResolver(jwtSecret string) *JWTSessionResolver {
	return &JWTSessionResolver{jwtSecret: jwtSecret}
}

// Resolve returns the role claim of a valid token, or the anonymous role when
// no usable token is present. A malformed token is anonymous, not an error.
func (s *JWTSessionResolver) Resolve(r *http.Request) (string, error) {
	token := extractToken(r)
	if token == "" {
		return RoleAnonymous, nil
	}

	claims, err := parseClaims(token, s.jwtSecret)
	if err != nil {
		return RoleAnonymous, nil
	}

	role, _ := claims["role"].(string)
	return role, nil
}
