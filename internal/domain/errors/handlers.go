package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ADDRESS_INCOMPLETE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the envelope the error handler writes for failed requests.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
