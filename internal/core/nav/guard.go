package nav

// Route is a navigable destination. Routes requiring authentication are only
// reachable with a valid session.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// AuthChecker reports whether a valid session exists. The state store
// satisfies this interface.
type AuthChecker interface {
	IsAuthenticated() bool
}

// Guard intercepts route transitions. It is synchronous and performs no
// network activity; the authentication state is sampled at the moment of
// transition.
type Guard struct {
	auth  AuthChecker
	login Route
}

// NewGuard creates a guard that redirects unauthenticated protected
// transitions to the given login route.
func NewGuard(auth AuthChecker, login Route) *Guard {
	return &Guard{
		auth:  auth,
		login: login,
	}
}

// Resolve returns the route the transition should actually complete to: the
// login route for protected targets without a valid session, the target
// itself otherwise. Unprotected routes always proceed.
func (g *Guard) Resolve(target Route) Route {
	if target.RequiresAuth && !g.auth.IsAuthenticated() {
		return g.login
	}

	return target
}
