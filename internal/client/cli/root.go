package cli

import (
	"fmt"

	"github.com/dmitrijs2005/matcha/internal/client/session"
)

// getStatus renders the prompt fragment describing the session: the
// first name once authenticated, "anonymous" otherwise, "..." while the
// startup validation is still unresolved.
func (a *App) getStatus() string {
	return statusFor(a.root.Session.Snapshot())
}

func statusFor(snap session.Snapshot) string {
	switch snap.State {
	case session.StateUnknown:
		return "(...)"
	case session.StateAuthenticated:
		return fmt.Sprintf("(%s)", snap.User.FirstName)
	default:
		return "(anonymous)"
	}
}
