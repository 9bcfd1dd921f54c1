package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 72 // bcrypt ignores bytes beyond 72
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Email = normalizeEmail(i.Email)
}

// Validate validates the register input.
func (i RegisterInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError
	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, "password", i.Password, minPasswordLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input. Only presence is checked so that
// login never leaks password policy.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate checks the new password only; the current one is verified
// against the stored hash by the service.
func (i ChangePasswordInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = appendPasswordErrors(errs, "new_password", i.NewPassword, minPasswordLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteAccountInput holds the password confirming an account deletion.
type DeleteAccountInput struct {
	CurrentPassword string
}

// Validate validates the delete-account input.
func (i DeleteAccountInput) Validate() error {
	if i.CurrentPassword == "" {
		return domain.NewValidationError("current_password", "required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, field, password string, minLength int) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len([]rune(password)) < minLength:
		return append(errs, domain.FieldError{Field: field, Message: "password is too short"})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "password is too long"})
	}
	return errs
}
