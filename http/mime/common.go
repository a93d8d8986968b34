package mime

type MIME = string

const (
	Plain      MIME = "text/plain"
	HTML       MIME = "text/html"
	CSS        MIME = "text/css"
	JPEG       MIME = "image/jpeg"
	GIF        MIME = "image/gif"
	PNG        MIME = "image/png"
	JAVASCRIPT MIME = "application/javascript"
)

type Charset = string

// UTF8 is the only charset the server ever announces
const UTF8 Charset = "utf-8"
