package auth

import "time"

// Claims is the verified content of an admin token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(subject string) (string, time.Time, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
