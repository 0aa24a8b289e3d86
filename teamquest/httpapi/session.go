package httpapi

import (
	"errors"
	"time"

	"github.com/gorilla/securecookie"
)

const SessionCookieName = "teamquest_session"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
)

type sessionPayload struct {
	UserID    string `json:"uid"`
	ExpiresAt int64  `json:"exp"`
}

// SessionCodec issues and verifies signed session cookie values. The expiry inside the payload is
// checked against the server clock, so tests with a fixed clock see the same TTL behavior.
type SessionCodec struct {
	cookie *securecookie.SecureCookie
	ttl    time.Duration
}

func NewSessionCodec(secret string, ttl time.Duration) SessionCodec {
	cookie := securecookie.New([]byte(secret), nil).
		SetSerializer(securecookie.JSONEncoder{}).
		MaxAge(int(ttl / time.Second))

	return SessionCodec{
		cookie: cookie,
		ttl:    ttl,
	}
}

// Issue returns a cookie value for userID and its expiry.
func (c SessionCodec) Issue(userID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(c.ttl).Truncate(time.Second)

	value, err := c.cookie.Encode(SessionCookieName, sessionPayload{UserID: userID, ExpiresAt: expiresAt.Unix()})
	if err != nil {
		return "", time.Time{}, err
	}

	return value, expiresAt, nil
}

// Verify returns the user ID of a valid, unexpired value.
func (c SessionCodec) Verify(value string, now time.Time) (string, error) {
	var payload sessionPayload
	if err := c.cookie.Decode(SessionCookieName, value, &payload); err != nil {
		return "", ErrInvalidSession
	}

	if payload.UserID == "" {
		return "", ErrInvalidSession
	}

	if !now.Before(time.Unix(payload.ExpiresAt, 0)) {
		return "", ErrSessionExpired
	}

	return payload.UserID, nil
}
