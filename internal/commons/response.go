package commons

// Response is the envelope boundary operations resolve to: a success
// carrying data, or a failure carrying a message and error details.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// Detail returns the first attached error detail, falling back to the
// message when none were attached. Used when a single line must be shown.
func (r Response[T]) Detail() string {
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return r.Message
}
