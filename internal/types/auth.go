package types

import "github.com/go-playground/validator/v10"

// LoginRequest represents the login request.
type LoginRequest struct {
	EmployeeID int    `json:"employee_id" validate:"required,gt=0"`
	Password   string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// LoginResponse carries the authenticated employee and their bearer token.
type LoginResponse struct {
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	Token      string `json:"token"`
}
