package kernel

import (
	"time"
)

// Role es un rol declarado en los claims del token de acceso
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleHRManager   Role = "HR_MANAGER"
	RoleRecruiter   Role = "RECRUITER"
	RoleInterviewer Role = "INTERVIEWER"
	RoleEmployee    Role = "EMPLOYEE"
)

// RoleSet es un conjunto de roles decodificados
type RoleSet map[Role]struct{}

// NewRoleSet construye un RoleSet desde strings crudos de claims
func NewRoleSet(roles ...string) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		if r == "" {
			continue
		}
		set[Role(r)] = struct{}{}
	}
	return set
}

// Has verifica pertenencia exacta de un rol
func (rs RoleSet) Has(role Role) bool {
	_, ok := rs[role]
	return ok
}

// Intersects verifica si el conjunto comparte algún rol con los permitidos
func (rs RoleSet) Intersects(allowed ...Role) bool {
	for _, role := range allowed {
		if rs.Has(role) {
			return true
		}
	}
	return false
}

// Slice devuelve los roles como strings (orden no garantizado)
func (rs RoleSet) Slice() []string {
	out := make([]string, 0, len(rs))
	for r := range rs {
		out = append(out, string(r))
	}
	return out
}

// Principal es la identidad decodificada del token de acceso del upstream.
//
// El token NO se verifica criptográficamente en el gateway: los claims son
// una pista de capacidades para armar la vista, nunca la autorización real.
// El upstream re-valida cada llamada con el token completo.
type Principal struct {
	Subject   string
	Email     string
	Name      string
	Roles     RoleSet
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired indica si el token ya venció según el reloj local
func (p *Principal) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt)
}

// IsValid valida que el principal tenga identidad mínima
func (p *Principal) IsValid() bool {
	return p != nil && p.Subject != ""
}
