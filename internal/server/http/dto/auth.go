package dto

import "time"

// AdminLoginRequest represents admin login payload.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse is returned after a successful login.
type AdminLoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
