package models

// AuthResponse carries the bearer token issued on register/login
type AuthResponse struct {
	Token string `json:"token"`
}
