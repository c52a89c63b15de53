package service

import (
	"github.com/SaiNageswarS/go-api-boot/auth"
)

// getUserIdAndTenant resolves the caller identity and tenant from the request
// context. Indirection so tests can stub the session.
var getUserIdAndTenant = auth.GetUserIdAndTenant
