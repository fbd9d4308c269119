package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidPIN         ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthSessionLocked      ErrorCode = "AUTH_005"
	AuthLockedOut          ErrorCode = "AUTH_006"
	AuthPINNotSet          ErrorCode = "AUTH_007"
	AuthPINAlreadySet      ErrorCode = "AUTH_008"
	AuthBiometricDisabled  ErrorCode = "AUTH_009"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationWeakPIN       ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_002"
	TransactionDuplicate         ErrorCode = "TRANSACTION_003"
	TransactionInvalidTransition ErrorCode = "TRANSACTION_004"
	TransactionInvalidType       ErrorCode = "TRANSACTION_005"
	TransactionInvalidStatus     ErrorCode = "TRANSACTION_006"
)

// Message parsing error codes (PARSE_*)
const (
	ParseEmptyMessage   ErrorCode = "PARSE_001"
	ParseNotTransaction ErrorCode = "PARSE_002"
	ParseNoAmount       ErrorCode = "PARSE_003"
	ParseBatchTooLarge  ErrorCode = "PARSE_004"
)

// Storage error codes (STORAGE_*)
const (
	StorageDecryptionFailed ErrorCode = "STORAGE_001"
	StorageUnavailable      ErrorCode = "STORAGE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidPIN:         "Incorrect PIN",
	AuthMissingToken:       "Session token is required",
	AuthExpiredToken:       "Session has expired, unlock again",
	AuthInvalidTokenFormat: "Invalid session token",
	AuthSessionLocked:      "Ledger is locked, unlock required",
	AuthLockedOut:          "Too many failed attempts, try again later",
	AuthPINNotSet:          "No PIN has been configured",
	AuthPINAlreadySet:      "A PIN is already configured, use the current PIN to change it",
	AuthBiometricDisabled:  "Biometric unlock is not enabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationWeakPIN:       "PIN does not meet the strength requirements",

	// Transaction errors
	TransactionNotFound:          "Transaction not found",
	TransactionInvalidAmount:     "Invalid transaction amount",
	TransactionDuplicate:         "Transaction with this reference number already exists",
	TransactionInvalidTransition: "Transaction status change is not allowed",
	TransactionInvalidType:       "Invalid transaction type",
	TransactionInvalidStatus:     "Invalid transaction status",

	// Parse errors
	ParseEmptyMessage:   "Message text is empty",
	ParseNotTransaction: "Message does not look like a transaction",
	ParseNoAmount:       "No amount could be extracted from the message",
	ParseBatchTooLarge:  "Too many messages in one request",

	// Storage errors
	StorageDecryptionFailed: "Stored data could not be decrypted",
	StorageUnavailable:      "Encrypted storage is unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
