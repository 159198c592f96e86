package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Feed pagination
	DefaultFeedPageSize = 5
	MaxFeedPageSize     = 50

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"

	// Database table names
	TableUsers       = "users"
	TableSessions    = "user_sessions"
	TableTickets     = "tickets"
	TableReviews     = "reviews"
	TableUserFollows = "user_follows"
)
