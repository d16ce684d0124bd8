package models

// LoginCredentials is the POST /sessions request body.
type LoginCredentials struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember-me"`
}

// SessionUser describes the authenticated user in a login response.
type SessionUser struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	ExternalID string `json:"external-id"`
}

// LoginResponse is the data payload of a successful POST /sessions.
type LoginResponse struct {
	User              SessionUser `json:"user"`
	SessionToken      string      `json:"session-token"`
	RememberToken     string      `json:"remember-token,omitempty"`
	SessionExpiration string      `json:"session-expiration,omitempty"`
}
