package models

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation is pure on purpose: each form has one function from input
// to an ordered message list, decoupled from any rendering mechanism.
// The lists feed the same rendering path as gateway validation failures,
// so a form needs exactly one rule to display either.

var emailPattern = regexp.MustCompile(`^[^@ ]+@[^@ ]+\.[^@ .]{2,}$`)

const passwordSpecials = "!@#$*?_"

// ValidateLogin checks the login form.
func ValidateLogin(c Credentials) []string {
	var msgs []string
	msgs = append(msgs, validateEmail(c.EmailAddress)...)
	if c.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	return msgs
}

// ValidateRegister checks the registration form.
func ValidateRegister(f RegisterForm) []string {
	var msgs []string
	if strings.TrimSpace(f.FirstName) == "" {
		msgs = append(msgs, "Firstname is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		msgs = append(msgs, "Lastname is required")
	}
	msgs = append(msgs, validateEmail(f.EmailAddress)...)
	msgs = append(msgs, validatePassword(f.Password)...)
	return msgs
}

// ValidateForgotPassword checks the forgot-password form.
func ValidateForgotPassword(f ForgotPasswordForm) []string {
	return validateEmail(f.EmailAddress)
}

// ValidateResetPassword checks the reset confirmation form.
func ValidateResetPassword(f ResetPasswordForm) []string {
	var msgs []string
	if f.Link == "" {
		msgs = append(msgs, "Reset link is required")
	}
	msgs = append(msgs, validatePassword(f.Password)...)
	return msgs
}

func validateEmail(addr string) []string {
	if addr == "" {
		return []string{"Email is required"}
	}
	if !emailPattern.MatchString(addr) {
		return []string{"Email is not valid"}
	}
	return nil
}

func validatePassword(pw string) []string {
	if pw == "" {
		return []string{"Password is required"}
	}
	if len(pw) < 6 {
		return []string{"Password should be at-least 6 characters."}
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return []string{"Password should contain at least one uppercase letter, lowercase letter, digit, and special symbol."}
	}
	return nil
}
