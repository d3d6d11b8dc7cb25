package errors

// ErrorInfo contains detailed error information.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "EVENT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Response is the error payload shape the HTTP error handler writes.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
