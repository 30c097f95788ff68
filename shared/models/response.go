package models

// Error codes returned to clients in ErrorResponse.Code.
const (
	ErrCodeBadRequest      = 40000
	ErrCodeValidation      = 40001
	ErrCodeUnauthenticated = 40100
	ErrCodeTokenInvalid    = 40101
	ErrCodeTokenExpired    = 40102
	ErrCodeForbidden       = 40300
	ErrCodeNotFound        = 40400
	ErrCodeConflict        = 40900
	ErrCodeTooManyRequests = 42900
	ErrCodeInternal        = 50000
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
