package di

import (
	authService "hotel/internal/domains/auth/service"
	"hotel/transport/http/middleware"
)

// provideTokenRevocation lets the auth middleware consult the logout blacklist.
func provideTokenRevocation(auth authService.Auth) middleware.TokenRevocation {
	return auth
}
