package domain

import "time"

// Role is the privilege tier of a consultant. It decides which dashboard
// tabs are reachable.
type Role string

const (
	RoleConsultant Role = "consultant"
	RoleLeader     Role = "leader"
	RoleAdmin      Role = "admin"
)

// IsDistributor reports whether the role unlocks the business and financial
// sections.
func (r Role) IsDistributor() bool {
	return r == RoleLeader || r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleConsultant, RoleLeader, RoleAdmin:
		return true
	}
	return false
}

// LevelLabel is the badge shown under the consultant's name in the menu.
func (r Role) LevelLabel() string {
	switch {
	case r == RoleAdmin:
		return "ADMINISTRADOR"
	case r.IsDistributor():
		return "LÍDER/DISTRIBUIDOR"
	default:
		return "CONSULTOR"
	}
}

// Consultant models the authenticated reseller.
type Consultant struct {
	ID         string    `json:"id"`
	AuthID     string    `json:"auth_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	WhatsApp   string    `json:"whatsapp"`
	DocumentID string    `json:"document_id"`
	Address    string    `json:"address"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// FirstName returns the first word of the consultant's name, used in the
// dashboard greeting.
func (c *Consultant) FirstName() string {
	for i, r := range c.Name {
		if r == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}

// IdentityRef points at an identity record held by the identity service.
type IdentityRef struct {
	AuthID string `json:"auth_id"`
	Email  string `json:"email,omitempty"`
}

// AuthSession is the identity service's handle for a verified login.
type AuthSession struct {
	Token     string    `json:"token"`
	AuthID    string    `json:"auth_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
