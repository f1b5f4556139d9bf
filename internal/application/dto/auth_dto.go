package dto

// LoginRequest credentials submitted by the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse session token returned on a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
