package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrMessageNotFound ErrCode = "MESSAGE_NOT_FOUND"
	ErrRouteNotFound   ErrCode = "ROUTE_NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Upstream / Server ─────────────────────────────────────────────
	ErrUpstream ErrCode = "UPSTREAM_ERROR"
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrTokenRequired:
		return "Not authorized, no token"
	case ErrTokenInvalid:
		return "Not authorized, token failed"
	case ErrValidation:
		return "Validation failed"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrMessageNotFound:
		return "Message not found"
	case ErrRouteNotFound:
		return "Route not found"
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrUpstream:
		return "Upstream AI service unavailable"
	case ErrInternal:
		return "Server error. Please try again later."
	default:
		return "Something went wrong"
	}
}
