package auth

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserInput represents the request body for registering a user.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
