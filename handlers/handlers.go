// Package handlers holds the fixed set of pages and services the site is built of.
package handlers

import (
	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/router"
)

const (
	IndexPage    = "<!DOCTYPE html><html><head><title>tinyhttp</title></head><body><h1>Hello, welcome to home page</h1><p>This is the index page for the web site</p></body></html>"
	GreetingPage = "<!DOCTYPE html><html><head><title>Greeting</title></head><body><h1>Hello, welcome!</h1></body></html>"
	HealthPage   = "<!DOCTYPE html><html><head><title>Health</title></head><body><h1>Hello, welcome to health page!</h1><p>This site is perfectly fine</p></body></html>"
	NotFoundPage = "<!DOCTYPE html><html><head><title>Not Found</title></head><body><h1>404 Not Found</h1><p>The page you are looking for doesn't exist</p></body></html>"
)

// New returns a router with all the site's routes registered.
func New(cfg *config.Config) *router.Router {
	return router.New().
		Get("/", Index).
		Get("/greeting", Greeting).
		Get("/health", Health).
		Post("/echo", Echo).
		Get(OrdersPath, Orders(cfg.Site.OrdersFile)).
		Static(cfg.Site.StaticPrefix, cfg.Site.StaticRoot).
		Fallback(NotFound)
}

func Index(request *http.Request) *http.Response {
	return http.String(request, IndexPage)
}

func Greeting(request *http.Request) *http.Response {
	return http.String(request, GreetingPage)
}

func Health(request *http.Request) *http.Response {
	return http.String(request, HealthPage)
}

// Echo responds with the request body as plain text.
func Echo(request *http.Request) *http.Response {
	return http.String(request, request.Body).ContentType(mime.Plain)
}

func NotFound(request *http.Request) *http.Response {
	return http.Code(request, status.NotFound).SetBody(NotFoundPage)
}
