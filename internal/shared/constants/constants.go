package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyCapability = "capability"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableSurveyResponses = "survey_responses"
	TableSurveyItems     = "survey_items"
	TableLocations       = "locations"

	// Casbin resources and actions guarding admin operations
	ResourceLocation = "location"
	ResourceResponse = "response"
	ResourceReport   = "report"
	ActionWrite      = "write"
	ActionRead       = "read"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgSubmitFailed        = "Failed to submit survey"
	ErrMsgLoadFailed          = "Failed to load data"
)
