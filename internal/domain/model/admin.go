package model

import "time"

// AdminIdentity is the verified holder of an admin token.
type AdminIdentity struct {
	Subject   string
	ExpiresAt time.Time
}

// AdminSession is returned on successful admin login.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}
