package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterResponse is the payload of a successful registration. Token
// and User are populated only when the server is configured to log the
// new account straight in; with mandatory e-mail verification both stay
// empty.
type RegisterResponse struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

func (g *Gateway) Login(ctx context.Context, creds models.Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := g.do(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *Gateway) Register(ctx context.Context, form models.RegisterForm) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := g.do(ctx, http.MethodPost, "/register", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser resolves the credential attached by the gateway into the
// account it belongs to ("who am I").
func (g *Gateway) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Gateway) ForgotPassword(ctx context.Context, form models.ForgotPasswordForm) error {
	return g.do(ctx, http.MethodPost, "/forgotpassword", form, nil)
}

func (g *Gateway) ResetPassword(ctx context.Context, form models.ResetPasswordForm) error {
	return g.do(ctx, http.MethodPost, "/resetpassword/"+url.PathEscape(form.Link),
		struct {
			Password string `json:"password"`
		}{Password: form.Password}, nil)
}

func (g *Gateway) VerifyEmail(ctx context.Context, link string) error {
	return g.do(ctx, http.MethodGet, "/verify/"+url.PathEscape(link), nil, nil)
}

// BrowseQuery narrows and orders a browse listing.
type BrowseQuery struct {
	SortBy string   // "age", "location" or "fameRating"; empty for server default
	Tags   []string // interest tags, all of which must match
}

func (q BrowseQuery) values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sort", q.SortBy)
	}
	if len(q.Tags) > 0 {
		v.Set("tags", strings.Join(q.Tags, ","))
	}
	return v
}

// CacheKey is a stable identity for this query, used by the browse
// service's response cache.
func (q BrowseQuery) CacheKey() string {
	return "browse?" + q.values().Encode()
}

func (g *Gateway) Browse(ctx context.Context, q BrowseQuery) ([]models.PublicProfile, error) {
	path := "/browse"
	if enc := q.values().Encode(); enc != "" {
		path += "?" + enc
	}
	var profiles []models.PublicProfile
	if err := g.do(ctx, http.MethodGet, path, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (g *Gateway) Profile(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	if err := g.do(ctx, http.MethodGet, "/profile/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Gateway) UpdateProfile(ctx context.Context, values models.ProfileFormValues) (*models.Profile, error) {
	var p models.Profile
	if err := g.do(ctx, http.MethodPut, "/profile", values, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Gateway) ChatMessages(ctx context.Context, profileID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := g.do(ctx, http.MethodGet, "/chat/"+url.PathEscape(profileID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (g *Gateway) SendChatMessage(ctx context.Context, profileID, text string) error {
	return g.do(ctx, http.MethodPost, "/chat/"+url.PathEscape(profileID),
		struct {
			Text string `json:"text"`
		}{Text: text}, nil)
}

func (g *Gateway) Notifications(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	if err := g.do(ctx, http.MethodGet, "/notifications", nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}
