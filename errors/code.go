package errors

// ErrorCode identifies error conditions in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_VALIDATION_FAILED ErrorCode = 1003
	ErrorCode_NOT_FOUND         ErrorCode = 1004
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1005
	ErrorCode_PERMISSION_DENIED ErrorCode = 1006
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1007
	ErrorCode_CONFLICT          ErrorCode = 1008

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_USER_NOT_FOUND           ErrorCode = 2003
	ErrorCode_USER_ALREADY_EXISTS      ErrorCode = 2004

	// Programs and content
	ErrorCode_PROGRAM_NOT_FOUND  ErrorCode = 3000
	ErrorCode_ASSET_NOT_FOUND    ErrorCode = 3001
	ErrorCode_ARTIFACT_NOT_FOUND ErrorCode = 3002

	// Generation
	ErrorCode_GENERATION_FAILED      ErrorCode = 4000
	ErrorCode_GENERATION_UNPARSEABLE ErrorCode = 4001
	ErrorCode_GENERATION_PARTIAL     ErrorCode = 4002

	// Persistence and integrations
	ErrorCode_PERSISTENCE_FAILED         ErrorCode = 5000
	ErrorCode_DB_CONNECTION_FAILED       ErrorCode = 5001
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5002
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_CONFLICT:                   "CONFLICT",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_USER_NOT_FOUND:             "USER_NOT_FOUND",
	ErrorCode_USER_ALREADY_EXISTS:        "USER_ALREADY_EXISTS",
	ErrorCode_PROGRAM_NOT_FOUND:          "PROGRAM_NOT_FOUND",
	ErrorCode_ASSET_NOT_FOUND:            "ASSET_NOT_FOUND",
	ErrorCode_ARTIFACT_NOT_FOUND:         "ARTIFACT_NOT_FOUND",
	ErrorCode_GENERATION_FAILED:          "GENERATION_FAILED",
	ErrorCode_GENERATION_UNPARSEABLE:     "GENERATION_UNPARSEABLE",
	ErrorCode_GENERATION_PARTIAL:         "GENERATION_PARTIAL",
	ErrorCode_PERSISTENCE_FAILED:         "PERSISTENCE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
