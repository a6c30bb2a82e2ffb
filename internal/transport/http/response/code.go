package response

// Envelope messages produced outside the services.
const (
	MsgValidationFailed = "Validation failed"
	MsgInvalidBody      = "Invalid request body"
	MsgInvalidQuery     = "Invalid query parameters"
	MsgInternal         = "Internal server error"
	MsgNoToken          = "No token provided"
	MsgInvalidToken     = "Invalid or expired token"
	MsgTokenExpired     = "Token has expired"
	MsgTooManyRequests  = "Too many requests"
	MsgServerBusy       = "Server busy"
	MsgBodyTooLarge     = "Request body too large"
	MsgTimeout          = "Request timed out"
)
