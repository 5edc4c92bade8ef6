package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Person error codes (PERSON_*)
const (
	PersonNotFound  ErrorCode = "PERSON_001"
	PersonInvalidID ErrorCode = "PERSON_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound  ErrorCode = "CATEGORY_001"
	CategoryInvalidID ErrorCode = "CATEGORY_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionMinorRestricted ErrorCode = "TRANSACTION_001"
	TransactionPurposeMismatch ErrorCode = "TRANSACTION_002"
	TransactionNotFound        ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Person errors
	PersonNotFound:  "person not found",
	PersonInvalidID: "Invalid person ID format",

	// Category errors
	CategoryNotFound:  "category not found",
	CategoryInvalidID: "Invalid category ID format",

	// Transaction errors
	TransactionMinorRestricted: "minors restricted to expenses",
	TransactionPurposeMismatch: "category purpose mismatch",
	TransactionNotFound:        "Transaction not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database operation failed",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
