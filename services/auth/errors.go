package auth

import "fmt"

// AuthError signals a failed login: credential rejection or a profile fetch
// that failed before the session could be committed.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed: %s: %v", e.Message, e.Err)
	}
	return "login failed: " + e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// ProfileFetchError signals a failed profile refresh for an existing session.
// It never alters authentication status.
type ProfileFetchError struct {
	Message string
	Err     error
}

func (e *ProfileFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile refresh failed: %s: %v", e.Message, e.Err)
	}
	return "profile refresh failed: " + e.Message
}

func (e *ProfileFetchError) Unwrap() error { return e.Err }
