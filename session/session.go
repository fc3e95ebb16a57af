package session

import "github.com/eassylife/b2bportal/models"

// Status is the lifecycle state of a browser session.
type Status int

const (
	Uninitialized Status = iota
	Unauthenticated
	Authenticating
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// Session is the portal's view of "is this client authenticated, and as
// whom". A Session is Authenticated only when both the upstream identity
// token and a resolved user profile are present.
type Session struct {
	User   *models.B2BUser
	Token  string
	Status Status
}

// IsAuthenticated reports whether the session holds a full token/user pair.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Status == Authenticated && s.Token != "" && s.User != nil
}
