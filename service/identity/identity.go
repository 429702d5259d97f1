package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/QuangTung97/crowdfund-admin/config"
)

// User is the signed-in user handed over by the identity proxy
type User struct {
	Email string
}

var (
	// ErrUnauthenticated when no user is signed in
	ErrUnauthenticated = errors.New("user is not signed in")

	// ErrForbidden when the user is not an admin
	ErrForbidden = errors.New("admin privilege required")
)

type ctxUserKey struct{}

var userKey ctxUserKey

// ToContext ...
func ToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// FromContext ...
func FromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

// Provider resolves users from requests and answers the admin flag
type Provider struct {
	header string
	admins map[string]struct{}
}

// NewProvider ...
func NewProvider(conf config.AdminConfig) *Provider {
	admins := make(map[string]struct{}, len(conf.Emails))
	for _, email := range conf.Emails {
		email = normalizeEmail(email)
		if email == "" {
			continue
		}
		admins[email] = struct{}{}
	}

	header := conf.UserHeader
	if header == "" {
		header = "X-User-Email"
	}

	return &Provider{
		header: header,
		admins: admins,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FromRequest reads the user set by the upstream proxy
func (p *Provider) FromRequest(r *http.Request) (User, bool) {
	email := strings.TrimSpace(r.Header.Get(p.header))
	if email == "" {
		return User{}, false
	}
	return User{Email: email}, true
}

// IsAdmin ...
func (p *Provider) IsAdmin(user User) bool {
	_, ok := p.admins[normalizeEmail(user.Email)]
	return ok
}

// Middleware stores the user of the request (if any) into its context
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := p.FromRequest(r)
		if ok {
			r = r.WithContext(ToContext(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// Authorize returns ErrUnauthenticated without a user in ctx,
// and ErrForbidden when adminOnly is set and the user is not an admin
func (p *Provider) Authorize(ctx context.Context, adminOnly bool) (User, error) {
	user, ok := FromContext(ctx)
	if !ok {
		return User{}, ErrUnauthenticated
	}
	if adminOnly && !p.IsAdmin(user) {
		return User{}, ErrForbidden
	}
	return user, nil
}

// Actor ...
func (p *Provider) Actor(ctx context.Context) string {
	user, _ := FromContext(ctx)
	return user.Email
}

// CanModerate ...
func (p *Provider) CanModerate(ctx context.Context) bool {
	user, ok := FromContext(ctx)
	return ok && p.IsAdmin(user)
}
