package users

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Media is an image reference attached to a profile
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// User is an account held by the stub API
type User struct {
	Name         string    `json:"name"`              // Unique profile name
	Email        string    `json:"email"`             // Login email
	PasswordHash string    `json:"-"`                 // Hashed version of the user's password - never serialize
	Bio          string    `json:"bio,omitempty"`     // Free-text biography
	Avatar       *Media    `json:"avatar,omitempty"`  // Profile picture
	Banner       *Media    `json:"banner,omitempty"`  // Profile banner
	DateJoined   time.Time `json:"created,omitempty"` // Date and time when the user registered
	LastLogin    time.Time `json:"-"`                 // Last time the user logged in
	Following    []string  `json:"-"`                 // Names of profiles this user follows
}

// NormalizeEmail trims and lowercases an email for lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword checks a password against the user's hash
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// IsFollowing reports whether the user follows the named profile
func (u *User) IsFollowing(name string) bool {
	for _, f := range u.Following {
		if f == name {
			return true
		}
	}
	return false
}

// Follow adds name to the following list. It returns false if already followed.
func (u *User) Follow(name string) bool {
	if u.IsFollowing(name) {
		return false
	}
	u.Following = append(u.Following, name)
	return true
}

// Unfollow removes name from the following list. It returns false if it was not followed.
func (u *User) Unfollow(name string) bool {
	for i, f := range u.Following {
		if f == name {
			u.Following = append(u.Following[:i], u.Following[i+1:]...)
			return true
		}
	}
	return false
}
