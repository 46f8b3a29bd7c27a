package response

// MeResponse tells an anonymous caller nothing beyond the boolean.
type MeResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userID"`
}
