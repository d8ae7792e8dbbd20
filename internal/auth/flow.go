// Package auth implements the session-establishing flow behind the login /
// register modal: credential submission, the OAuth code exchange, the
// register-then-login handoff, and the role-based redirect policy.
package auth

import (
	"context"

	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/models"
	"github.com/tourmate-app/tourmate-cli/internal/session"
)

// Mode selects which form of the modal is submitted.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Fields carries the credential form values. Name is only used in register
// mode.
type Fields struct {
	Name     string
	Email    string
	Password string
}

// Result describes what the UI should do after a successful submission.
//
// Exactly one of the two shapes occurs: a register success switches the
// modal to login mode with the email pre-filled (SwitchToLogin) and
// establishes no session; a login or OAuth success carries the session and
// the redirect resolved from the user's role.
type Result struct {
	Session  *models.Session
	Redirect session.Redirect

	SwitchToLogin bool
	PrefillEmail  string
}

// backendAPI is the slice of the API client the flow needs.
type backendAPI interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) error
	GoogleLogin(ctx context.Context, code string) (*models.Session, error)
}

// Flow wires the backend, the injected session store, and the redirect
// policy together.
type Flow struct {
	api   backendAPI
	store session.Store
	log   logging.Logger
}

func NewFlow(api backendAPI, store session.Store, log logging.Logger) *Flow {
	return &Flow{api: api, store: store, log: log}
}

// SubmitCredentials submits the login or register form. Any failure leaves
// the session store untouched; the caller surfaces a single general error
// message and the user retries manually.
func (f *Flow) SubmitCredentials(ctx context.Context, mode Mode, fields Fields) (*Result, error) {
	if mode == ModeRegister {
		if err := f.api.Register(ctx, fields.Name, fields.Email, fields.Password); err != nil {
			return nil, err
		}
		// Deliberately no auto-login after registration.
		return &Result{SwitchToLogin: true, PrefillEmail: fields.Email}, nil
	}

	sess, err := f.api.Login(ctx, fields.Email, fields.Password)
	if err != nil {
		return nil, err
	}
	return f.establish(ctx, sess)
}

// SubmitOAuth exchanges a provider authorization code for a session. The
// redirect policy is the same as for a password login.
func (f *Flow) SubmitOAuth(ctx context.Context, code string) (*Result, error) {
	sess, err := f.api.GoogleLogin(ctx, code)
	if err != nil {
		return nil, err
	}
	return f.establish(ctx, sess)
}

// Logout clears the persisted session.
func (f *Flow) Logout(ctx context.Context) error {
	return f.store.Clear(ctx)
}

func (f *Flow) establish(ctx context.Context, sess *models.Session) (*Result, error) {
	if err := f.store.Save(ctx, *sess); err != nil {
		return nil, err
	}
	f.log.Info(ctx, "session established", "user", sess.User.Email, "role", sess.User.Role)
	return &Result{Session: sess, Redirect: session.RedirectFor(sess.User.Role)}, nil
}
