package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. A request is read by a single read, so anything that doesn't fit is
		// silently lost.
		ReadBufferSize int
		// ReadTimeout limits how long a connection may stay silent before it's closed
		// without a response.
		ReadTimeout time.Duration
		// WriteTimeout limits how long the response may be written.
		WriteTimeout time.Duration
	}

	Site struct {
		// StaticPrefix is the path prefix under which files from StaticRoot are served.
		StaticPrefix string
		// StaticRoot is the directory static files are served from.
		StaticRoot string
		// OrdersFile is a JSON file served by the shipping orders web service.
		OrdersFile string
	}
)

// Config holds settings of the connection handler and the site.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET  NET
	Site Site
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			// 2kb are enough to fit an ordinary request with a small body.
			ReadBufferSize: 2 * 1024,
			ReadTimeout:    90 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
		Site: Site{
			StaticPrefix: "/static/",
			StaticRoot:   "public",
			OrdersFile:   "data/orders.json",
		},
	}
}
