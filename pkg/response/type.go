package response

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	// DefaultErrorMessage is the body text of every unexpected failure.
	DefaultErrorMessage = "Internal server error"
	// InternalServerErrorCode is the machine code paired with DefaultErrorMessage.
	InternalServerErrorCode = "internal_error"
)
