package serverutils

// ApiError carries an HTTP status through the service layer without
// the service importing fiber.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func NotFoundError(message string) *ApiError {
	return &ApiError{Code: 404, Message: message}
}

func BadRequestError(message string) *ApiError {
	return &ApiError{Code: 400, Message: message}
}
