package constant

const (
	// SlimHeaderKey indicates the current request shall be ignored by Sentry
	// transaction tracing. Typically set by uptime probes.
	SlimHeaderKey = "X-Slim"
)
