package response

// ErrorBody is the JSON shape for errors raised outside the handlers
// (middleware, router level 404/405, recovered panics).
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Error(code, message string, details interface{}) ErrorBody {
	return ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}
}
