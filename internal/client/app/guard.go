package app

import "github.com/dmitrijs2005/matcha/internal/client/session"

// RouteLanding is where unauthenticated visitors are sent.
const RouteLanding = "/"

// Decision is the outcome of a guard check. When Allow is false,
// RedirectTo holds the route to go to instead of the target.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the protected-route guard. It is a pure function of the
// session state: only an authenticated session may proceed, everything
// else (including the not-yet-resolved startup state) is sent to the
// landing route. The target is accepted for symmetry and future
// per-route rules; it does not influence the verdict today.
func Decide(state session.State, target string) Decision {
	if state == session.StateAuthenticated {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: RouteLanding}
}
