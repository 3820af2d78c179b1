package mime

import (
	"path/filepath"

	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
	WEBP        MIME = "image/webp"
	WASM        MIME = "application/wasm"
)

var Extension = map[string]MIME{
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".ico":  ICO,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
}

// ByPath guesses the MIME of a file by its extension. Extensions are matched regardless
// of their case. Unknown extensions result in OctetStream.
func ByPath(path string) MIME {
	ext := filepath.Ext(path)
	if mime, found := Extension[ext]; found {
		return mime
	}

	for known, mime := range Extension {
		if strcomp.EqualFold(known, ext) {
			return mime
		}
	}

	return OctetStream
}
