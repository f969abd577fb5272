package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/matcha/internal/client/config"
	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form, validates it locally, and
// creates the account. Validation failures render through the same path
// as backend ones and never reach the network.
//
// What a successful registration prints depends on the configured
// registration mode: with mandatory e-mail verification the session is
// untouched and the user is told to check their mail; with auto-login
// the session is established immediately.
func (a *App) Register(ctx context.Context) error {
	form := models.RegisterForm{}
	var err error

	if form.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if form.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if form.EmailAddress, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if form.Password, err = getPassword(os.Stdout); err != nil {
		return err
	}

	if msgs := models.ValidateRegister(form); len(msgs) > 0 {
		renderMessages(msgs)
		return nil
	}

	if err := a.root.Session.RegisterUser(ctx, form); err != nil {
		renderError(err)
		return err
	}

	if snap := a.root.Session.Snapshot(); snap.User != nil &&
		a.config.RegistrationMode == config.RegistrationAutoLogin {
		printlnFn("Welcome, " + snap.User.FirstName + "!")
	} else {
		printlnFn("Account created. Check your mail for the verification link.")
	}
	return nil
}

// Login prompts for credentials, validates them locally, and
// establishes the session on success.
func (a *App) Login(ctx context.Context) error {
	creds := models.Credentials{}
	var err error

	if creds.EmailAddress, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if creds.Password, err = getPassword(os.Stdout); err != nil {
		return err
	}

	if msgs := models.ValidateLogin(creds); len(msgs) > 0 {
		renderMessages(msgs)
		return nil
	}

	if err := a.root.Session.LoginUser(ctx, creds); err != nil {
		renderError(err)
		return err
	}

	printlnFn("Welcome back, " + a.root.Session.Snapshot().User.FirstName + "!")
	return nil
}

// Logout drops the session. It cannot fail: token and user are cleared
// in memory and in durable storage regardless of backend reachability.
func (a *App) Logout(ctx context.Context) error {
	a.root.Session.LogoutUser()
	printlnFn("Logged out.")
	return nil
}

// WhoAmI shows the account behind the current session, revalidating it
// against the backend first.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	if err := a.root.Session.GetUser(ctx); err != nil {
		renderError(err)
		return err
	}

	snap := a.root.Session.Snapshot()
	printlnFn(snap.User.FirstName + " " + snap.User.LastName + " <" + snap.User.EmailAddress + ">")
	return nil
}

// Verify confirms an e-mail verification link received after
// registration.
func (a *App) Verify(ctx context.Context, link string) error {
	if err := a.root.Session.VerifyEmail(ctx, link); err != nil {
		renderError(err)
		return err
	}
	printlnFn("Email verified. You can login now.")
	return nil
}
