// Package app is the composition root of the client: it builds the
// gateway, the session store, and the modal store in dependency order,
// runs the startup sequence, and hosts the navigation guard. There are
// no ambient globals; consumers receive the Root explicitly.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/matcha/internal/client/api"
	"github.com/dmitrijs2005/matcha/internal/client/config"
	"github.com/dmitrijs2005/matcha/internal/client/modal"
	"github.com/dmitrijs2005/matcha/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/matcha/internal/client/session"
	"github.com/dmitrijs2005/matcha/internal/logging"
)

type Root struct {
	Gateway *api.Gateway
	Session *session.Store
	Modals  *modal.Store

	creds credentials.Repository
	log   logging.Logger
	// loaded guards the one-shot "startup complete" transition.
	loaded sync.Once
}

// New wires the stores. Construction order matters: the gateway exists
// before the session store, because the session mirrors its token into
// the gateway.
func New(cfg *config.Config, creds credentials.Repository, log logging.Logger) *Root {
	if log == nil {
		log = logging.NewNopLogger()
	}

	gw := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, cfg.RequestsPerSecond, log)

	sess := session.New(gw, creds, log,
		session.WithAutoLogin(cfg.RegistrationMode == config.RegistrationAutoLogin))

	return &Root{
		Gateway: gw,
		Session: sess,
		Modals:  modal.New(),
		creds:   creds,
		log:     log,
	}
}

// Bootstrap runs the startup sequence: restore a durable token if one
// exists, validate it with GetUser, log out on any failure, and mark
// the initial load complete exactly once in every path. A token that is
// locally known to be expired skips the doomed round trip.
func (r *Root) Bootstrap(ctx context.Context) {
	defer r.loaded.Do(r.Session.CompleteInitialLoad)

	token, err := r.creds.Token(ctx)
	if err != nil {
		r.log.Warn(ctx, "failed to read stored token", "error", err)
		return
	}
	if token == "" {
		return
	}

	r.Session.RestoreToken(token)

	if session.TokenExpired(token, time.Now()) {
		r.log.Info(ctx, "stored token expired, logging out")
		r.Session.LogoutUser()
		return
	}

	if err := r.Session.GetUser(ctx); err != nil {
		r.log.Info(ctx, "stored token rejected, logging out", "error", err)
		r.Session.LogoutUser()
	}
}
