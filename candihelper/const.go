package candihelper

const (
	// Version of this service
	Version = "v1.0.0"

	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderAuthorization const
	HeaderAuthorization = "Authorization"
	// HeaderUserAgent const
	HeaderUserAgent = "User-Agent"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
)
