package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/matcha/internal/client/models"
	"github.com/dmitrijs2005/matcha/internal/client/session"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want string
	}{
		{"unknown", session.Snapshot{State: session.StateUnknown, LoadingInitial: true}, "(...)"},
		{"anonymous", session.Snapshot{State: session.StateAnonymous}, "(anonymous)"},
		{
			"authenticated",
			session.Snapshot{State: session.StateAuthenticated, User: &models.User{FirstName: "Ada"}},
			"(Ada)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.snap))
		})
	}
}
