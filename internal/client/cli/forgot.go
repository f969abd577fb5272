package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/matcha/internal/client/modal"
	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// Forgot drives the forgot-password dialog. The dialog opens before the
// form is submitted; on failure the error is rendered and the dialog
// stays open so the address can be corrected; only on success does it
// swap to the confirmation dialog.
func (a *App) Forgot(ctx context.Context) error {
	a.root.Modals.Open(modal.ForgotPassword)
	defer a.root.Modals.Close(modal.ForgotPassword)

	for a.root.Modals.IsOpen(modal.ForgotPassword) {
		email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
		if email == "" {
			// Empty input closes the dialog without submitting.
			return nil
		}

		if msgs := models.ValidateForgotPassword(models.ForgotPasswordForm{EmailAddress: email}); len(msgs) > 0 {
			renderMessages(msgs)
			continue
		}

		if err := a.root.Session.RequestPasswordReset(ctx, email); err != nil {
			renderError(err)
			continue
		}

		a.root.Modals.Close(modal.ForgotPassword)
		a.root.Modals.Open(modal.ForgotPasswordSuccess)
		printlnFn("Check your mail for the reset link.")
		a.root.Modals.Close(modal.ForgotPasswordSuccess)
	}
	return nil
}

// Reset completes a password reset with the link received by mail.
func (a *App) Reset(ctx context.Context) error {
	form := models.ResetPasswordForm{}
	var err error

	if form.Link, err = getSimpleText(a.reader, "Enter reset link", os.Stdout); err != nil {
		return err
	}
	if form.Password, err = getPassword(os.Stdout); err != nil {
		return err
	}

	if msgs := models.ValidateResetPassword(form); len(msgs) > 0 {
		renderMessages(msgs)
		return nil
	}

	if err := a.root.Session.ConfirmPasswordReset(ctx, form.Link, form.Password); err != nil {
		renderError(err)
		return err
	}

	printlnFn("Password changed. You can login now.")
	return nil
}
