package dto

type ValidationError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Please provide a valid email"`
}

type ValidationErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"Validation failed"`
	Errors  []ValidationError `json:"errors"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid email or password"`
}
