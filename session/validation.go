package session

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
)

const (
	minPasswordLength = 8
	maxBioLength      = 160
	studentDomain     = "@stud.noroff.no"
)

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// ValidateName checks that a profile name is 3-20 letters, digits or underscores
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return apperrors.NewValidationError("name", "Name must be 3-20 characters: letters, numbers and underscores only.")
	}
	return nil
}

// ValidateEmail checks that an email belongs to the student domain
func ValidateEmail(email string) error {
	value := strings.ToLower(strings.TrimSpace(email))
	local, found := strings.CutSuffix(value, studentDomain)
	if !found || local == "" || strings.ContainsAny(local, " \t\r\n@") {
		return apperrors.NewValidationError("email", "Email must be a valid stud.noroff.no address.")
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.NewValidationError("password", "Password must be at least 8 characters.")
	}
	return nil
}

// ValidateBio checks the maximum bio length
func ValidateBio(bio string) error {
	if len([]rune(bio)) > maxBioLength {
		return apperrors.NewValidationError("bio", "Bio must be 160 characters or less.")
	}
	return nil
}

// ValidateURL accepts an empty value or an absolute http/https URL
func ValidateURL(field, raw string) error {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.NewValidationError(field, "Please enter a valid http(s) URL.")
	}
	return nil
}

// ValidateLogin checks the login form before any request is sent
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return apperrors.NewValidationError("password", "Password is required.")
	}
	return nil
}

// ValidateRegistration checks every field of the registration form
func ValidateRegistration(in RegisterInput) error {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return err
	}
	if err := ValidateBio(in.Bio); err != nil {
		return err
	}
	return ValidateURL("avatar", in.AvatarURL)
}
