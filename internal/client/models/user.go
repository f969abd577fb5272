// Package models defines the user, profile, and form types exchanged
// with the Matcha backend, plus pure per-form validation.
package models

// User is the authenticated account snapshot returned by the login and
// "who am I" endpoints.
type User struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmailAddress  string `json:"emailAddress"`
	EmailVerified bool   `json:"emailVerified"`
}

// Credentials is the login form payload.
type Credentials struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// RegisterForm is the registration form payload.
type RegisterForm struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	EmailAddress     string `json:"emailAddress"`
	Password         string `json:"password"`
	Gender           string `json:"gender,omitempty"`
	SexualPreference string `json:"sexualPreference,omitempty"`
}

// ForgotPasswordForm carries the address a reset link is mailed to.
type ForgotPasswordForm struct {
	EmailAddress string `json:"emailAddress"`
}

// ResetPasswordForm confirms a password reset: the link token from the
// reset e-mail plus the replacement password.
type ResetPasswordForm struct {
	Link     string `json:"link"`
	Password string `json:"password"`
}
