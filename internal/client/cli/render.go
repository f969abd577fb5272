package cli

import (
	"github.com/dmitrijs2005/matcha/internal/client/api"
)

// renderMessages prints a message list one line at a time, in order.
// Local validation and backend validation both end up here, so a form
// renders either through exactly one path.
func renderMessages(msgs []string) {
	for _, m := range msgs {
		printlnFn("! " + m)
	}
}

// renderError prints any command failure. Classified backend failures
// show their message list (validation) or their single message;
// anything else is printed verbatim.
func renderError(err error) {
	if err == nil {
		return
	}
	if be, ok := api.AsBackendError(err); ok {
		if len(be.Messages) > 0 {
			renderMessages(be.Messages)
			return
		}
		renderMessages([]string{be.Message})
		return
	}
	renderMessages([]string{err.Error()})
}
