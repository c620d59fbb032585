package auth

import "hockey-playdate/clubhouse/internal/constants"

// UserClaims is the resolved identity of the caller. The membership core
// never reads it from ambient state; middleware resolves claims once and
// handlers pass the user ID into the service explicitly.
type UserClaims interface {
	UserID() string
	Email() string
	Source() constants.RequestSource
}

// SessionClaims is the identity carried by a Redis-backed browser session.
type SessionClaims struct {
	UserIDValue string
	EmailValue  string
	NameValue   string
}

func (c *SessionClaims) UserID() string                  { return c.UserIDValue }
func (c *SessionClaims) Email() string                   { return c.EmailValue }
func (c *SessionClaims) Source() constants.RequestSource { return constants.RequestSourceSession }

// BearerClaims is the identity carried by a signed bearer token, used by
// non-browser clients.
type BearerClaims struct {
	UserIDValue string
	EmailValue  string
}

func (c *BearerClaims) UserID() string                  { return c.UserIDValue }
func (c *BearerClaims) Email() string                   { return c.EmailValue }
func (c *BearerClaims) Source() constants.RequestSource { return constants.RequestSourceBearer }
