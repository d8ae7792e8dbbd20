package cli

import (
	"context"
	"os"

	"github.com/tourmate-app/tourmate-cli/internal/api"
	"github.com/tourmate-app/tourmate-cli/internal/auth"
	"github.com/tourmate-app/tourmate-cli/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register creates an account and, per the backend's flow, does not log the
// user in: on success it switches straight into the login prompt with the
// email pre-filled.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	res, err := a.flow.SubmitCredentials(ctx, auth.ModeRegister, auth.Fields{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	printlnFn("Account created. Please log in.")
	return a.loginWithEmail(ctx, res.PrefillEmail)
}

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	return a.loginWithEmail(ctx, email)
}

func (a *App) loginWithEmail(ctx context.Context, email string) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	res, err := a.flow.SubmitCredentials(ctx, auth.ModeLogin, auth.Fields{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	a.current = res.Session
	a.announceRedirect(res.Redirect)
	return nil
}

// Google exchanges a pasted provider authorization code for a session.
func (a *App) Google(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Paste the Google authorization code", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.flow.SubmitOAuth(ctx, code)
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	a.current = res.Session
	a.announceRedirect(res.Redirect)
	return nil
}

// Logout clears the persisted session and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.flow.Logout(ctx); err != nil {
		printlnFn(api.Message(err))
		return err
	}
	a.current = nil
	printlnFn("Logged out.")
	return nil
}

func (a *App) announceRedirect(r session.Redirect) {
	if r.Reload {
		printlnFn("Logged in.")
		return
	}
	printlnFn("Logged in. Taking you to " + r.Path)
}
