package helpers

import (
	"auction-marketplace/internal/identity"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// SetPrincipal stores the authenticated caller on the request context
func SetPrincipal(c *gin.Context, p *identity.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller set by the auth middleware, or nil for
// anonymous requests.
func PrincipalFrom(c *gin.Context) *identity.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*identity.Principal)
	return p
}
