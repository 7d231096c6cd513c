package global

const (
	AppVersion = "1.0.0" //project version shown in logs and the health endpoint

	// Frock defaults (match the rewrite rule `^(.*)$ -> ?path=$1`).
	DefaultPathKey = "path"  // request key that carries the requested path
	DefaultPath    = "hello" // used when a request carries no path at all

	// Gin context key for storing the authenticated operator name.
	// Using a string constant reduces risk of typos and collisions.
	CtxOperatorKey = "operator"
)
