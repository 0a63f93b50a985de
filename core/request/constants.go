package request

// Standard header names consumed by filters and adapters.
const (
	HeaderContentType = "Content-Type"
	HeaderAllow       = "Allow"
	HeaderRequestID   = "X-Request-Id"

	HeaderAccessControlAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders = "Access-Control-Allow-Headers"
)

// Media type constants shared by the content-encoding filter and adapters.
const (
	MediaTypeJSON = "application/json"
	MediaTypeText = "text/plain"
	MediaTypeXML  = "application/xml"
)

// Attribute keys published by the matcher for the benefit of filters.
// Attributes are request-scoped and travel with copy-with-overrides.
const (
	// AttrRoutePattern holds the matched route's path pattern.
	AttrRoutePattern = "route.pattern"

	// AttrRouteAuth holds the matched route's auth requirement tag.
	AttrRouteAuth = "route.auth"

	// AttrRouteCORS holds the matched route's CORS flag as a bool.
	AttrRouteCORS = "route.cors"

	// AttrStaticPath holds the remainder path captured by a static-file
	// route, relative to its mount point.
	AttrStaticPath = "route.staticPath"

	// AttrRequestID holds the identifier assigned by the request-id filter.
	AttrRequestID = "request.id"
)

// Conventional Env keys under which adapters publish deployment metadata.
const (
	// EnvStage holds the deployment stage identifier.
	EnvStage = "stage"

	// EnvRequestID holds the platform-assigned request identifier, when the
	// inbound adapter's protocol carries one.
	EnvRequestID = "requestId"
)
