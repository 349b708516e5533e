package identity

import (
	"fmt"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
)

// AnyRole accepts every authenticated principal
const AnyRole model.Role = ""

// Principal is the authenticated identity behind a request
type Principal struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// IsAdmin reports whether the principal holds the ADMIN role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == model.RoleAdmin
}

// FromUser builds the principal for a stored user
func FromUser(u model.User) *Principal {
	return &Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Authorize is the authorization gate run before every operation.
// A nil principal is anonymous.
func Authorize(p *Principal, required model.Role) error {
	if p == nil {
		return marketerrors.ErrUnauthenticated
	}
	if required != AnyRole && p.Role != required {
		return fmt.Errorf("%w: %s required, principal %d is %s", marketerrors.ErrForbidden, required, p.ID, p.Role)
	}
	return nil
}
