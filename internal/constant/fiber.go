package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-ClubDesk-Request-ID"
)
