package middlewares

// Keys used to stash request-scoped values on the gin context.
const (
	CtxRequestID = "request_id"
	CtxRole      = "auth.role"
)
