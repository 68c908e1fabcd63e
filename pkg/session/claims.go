package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// DecodeClaims decodifica el token de acceso SIN verificar la firma y arma
// el Principal para mostrar roles y expiración en la vista.
//
// El gateway no tiene la clave del upstream: estos claims son una pista de
// display, no autorización. Cada llamada real viaja con el token completo y
// el upstream la re-valida. Un token vencido se decodifica igual; el caller
// decide con Principal.Expired.
func DecodeClaims(token string) (*kernel.Principal, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken().WithCause(err)
	}

	principal := &kernel.Principal{
		Roles: kernel.NewRoleSet(extractRoles(claims)...),
	}

	if sub, err := claims.GetSubject(); err == nil {
		principal.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		principal.Name = name
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		principal.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		principal.ExpiresAt = exp.Time
	}

	if !principal.IsValid() {
		return nil, ErrMalformedToken().WithDetail("reason", "missing subject claim")
	}
	return principal, nil
}

// extractRoles tolera las dos formas del claim: "roles" como lista o "role"
// como string suelto
func extractRoles(claims jwt.MapClaims) []string {
	if raw, ok := claims["roles"].([]any); ok {
		roles := make([]string, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	}
	if role, ok := claims["role"].(string); ok {
		return []string{role}
	}
	return nil
}

// SessionFromToken arma una sesión nueva decodificando la expiración del
// token; si el token no trae exp se usa el TTL por defecto
func SessionFromToken(id, token string, defaultTTL time.Duration, now time.Time) (Session, *kernel.Principal, error) {
	principal, err := DecodeClaims(token)
	if err != nil {
		return Session{}, nil, err
	}

	expiresAt := principal.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(defaultTTL)
	}

	return Session{
		ID:          id,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}, principal, nil
}
