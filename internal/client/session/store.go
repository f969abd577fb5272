// Package session owns the authentication state of the client: the
// credential token, the current user profile, and the login, logout,
// registration, and verification lifecycle. It is the single source of
// truth for "is the user logged in"; everything else reads snapshots.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/matcha/internal/client/api"
	"github.com/dmitrijs2005/matcha/internal/client/models"
	"github.com/dmitrijs2005/matcha/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/matcha/internal/logging"
)

// API is the slice of the gateway the session store consumes. Tests
// provide a fake; production passes *api.Gateway.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (*api.LoginResponse, error)
	Register(ctx context.Context, form models.RegisterForm) (*api.RegisterResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	ForgotPassword(ctx context.Context, form models.ForgotPasswordForm) error
	ResetPassword(ctx context.Context, form models.ResetPasswordForm) error
	VerifyEmail(ctx context.Context, link string) error
	SetAuthToken(token string)
}

// State is the session validity state machine.
type State string

const (
	// StateUnknown holds from process start until the first validation
	// attempt resolves. Guards must treat it as "not allowed".
	StateUnknown State = "unknown"
	// StateAnonymous means no token.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means token plus a server-validated user.
	StateAuthenticated State = "authenticated"
)

// Snapshot is a read-only view of the session at one observable point.
// Invariant: User != nil implies Token != "".
type Snapshot struct {
	Token          string
	User           *models.User
	State          State
	LoadingInitial bool
}

// Subscriber receives the snapshot after a mutation has fully applied.
type Subscriber func(Snapshot)

type subscription struct {
	id int
	fn Subscriber
}

// Store is the session store. All mutation goes through its methods;
// fields are never assigned from outside.
type Store struct {
	api       API
	creds     credentials.Repository
	log       logging.Logger
	autoLogin bool

	sf singleflight.Group

	mu             sync.Mutex
	token          string
	user           *models.User
	loadingInitial bool
	// gen is bumped on every token transition. An in-flight read that
	// resolves under a different generation is stale and discards its
	// result, so a logout always wins regardless of arrival order.
	gen     uint64
	subs    []subscription
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithAutoLogin makes a successful registration establish the session
// from the register response. The default requires a separate e-mail
// verification before first login.
func WithAutoLogin(enabled bool) Option {
	return func(s *Store) { s.autoLogin = enabled }
}

func New(a API, creds credentials.Repository, log logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	s := &Store{api: a, creds: creds, log: log, loadingInitial: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current observable session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// State is shorthand for Snapshot().State.
func (s *Store) State() State {
	return s.Snapshot().State
}

// Subscribe registers fn for change notifications and returns its
// unsubscribe function. Notifications run in subscription order, after
// the mutation is fully applied.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// LoginUser authenticates against the server. On success the returned
// token and profile become the session; on failure the BackendError is
// propagated unchanged and the session is left untouched.
func (s *Store) LoginUser(ctx context.Context, creds models.Credentials) error {
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	user := resp.User
	s.establish(ctx, resp.Token, &user)
	return nil
}

// RegisterUser creates an account. Whether it also establishes a session
// is a configuration decision (WithAutoLogin); the default leaves the
// session untouched pending e-mail verification.
func (s *Store) RegisterUser(ctx context.Context, form models.RegisterForm) error {
	resp, err := s.api.Register(ctx, form)
	if err != nil {
		return err
	}
	if s.autoLogin && resp.Token != "" && resp.User != nil {
		s.establish(ctx, resp.Token, resp.User)
	}
	return nil
}

// GetUser validates the already-attached credential against the server
// and stores the resulting profile. Callers are responsible for invoking
// LogoutUser on failure; the store does not decide that here.
//
// Concurrent calls are collapsed into one network round trip. A result
// that arrives after an intervening logout or token change is discarded:
// it must not resurrect a user without a token.
func (s *Store) GetUser(ctx context.Context) error {
	s.mu.Lock()
	gen := s.gen
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return &api.BackendError{Status: api.ClassUnauthorized, Message: "no session token"}
	}

	v, err, _ := s.sf.Do("current-user", func() (any, error) {
		return s.api.CurrentUser(ctx)
	})
	if err != nil {
		return err
	}
	user := v.(*models.User)

	s.mu.Lock()
	if s.gen != gen || s.token == "" {
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding stale session validation result")
		return nil
	}
	s.user = user
	snap, subs := s.changedLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// LogoutUser clears the token and the user synchronously and
// unconditionally. It never fails; durable-storage trouble is logged and
// swallowed. Both fields change under one lock, so no snapshot can ever
// observe a user without a token.
func (s *Store) LogoutUser() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.gen++
	snap, subs := s.changedLocked()
	s.mu.Unlock()

	s.api.SetAuthToken("")
	ctx := context.Background()
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored token", "error", err)
	}

	notify(subs, snap)
}

// RestoreToken installs a token recovered from durable storage without a
// validated user. The startup sequence follows it with GetUser.
func (s *Store) RestoreToken(token string) {
	s.mu.Lock()
	s.token = token
	s.gen++
	snap, subs := s.changedLocked()
	s.mu.Unlock()

	s.api.SetAuthToken(token)
	notify(subs, snap)
}

// CompleteInitialLoad marks the first validation attempt as resolved.
// The composition root calls it exactly once.
func (s *Store) CompleteInitialLoad() {
	s.mu.Lock()
	s.loadingInitial = false
	snap, subs := s.changedLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// RequestPasswordReset asks the server to mail a reset link. Stateless:
// the session is not touched either way.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	return s.api.ForgotPassword(ctx, models.ForgotPasswordForm{EmailAddress: email})
}

// ConfirmPasswordReset completes a reset started by e-mail link.
func (s *Store) ConfirmPasswordReset(ctx context.Context, link, newPassword string) error {
	return s.api.ResetPassword(ctx, models.ResetPasswordForm{Link: link, Password: newPassword})
}

// VerifyEmail confirms an e-mail verification link.
func (s *Store) VerifyEmail(ctx context.Context, link string) error {
	return s.api.VerifyEmail(ctx, link)
}

func (s *Store) establish(ctx context.Context, token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.gen++
	snap, subs := s.changedLocked()
	s.mu.Unlock()

	s.api.SetAuthToken(token)
	if err := s.creds.SaveToken(ctx, token); err != nil {
		s.log.Warn(ctx, "failed to persist session token", "error", err)
	}

	notify(subs, snap)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Token:          s.token,
		User:           s.user,
		State:          s.stateLocked(),
		LoadingInitial: s.loadingInitial,
	}
}

func (s *Store) stateLocked() State {
	switch {
	case s.loadingInitial:
		return StateUnknown
	case s.token != "" && s.user != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

func (s *Store) changedLocked() (Snapshot, []subscription) {
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	return s.snapshotLocked(), subs
}

func notify(subs []subscription, snap Snapshot) {
	for _, sub := range subs {
		sub.fn(snap)
	}
}

// TokenExpired reports whether token is a JWT whose expiry lies before
// now. The signature is deliberately not verified (the client has no
// key); an opaque or claim-less token reports false and is left for the
// server to judge.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
