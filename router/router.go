package router

import (
	"fmt"
	"io"
	"slices"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/status"
)

type (
	Handler func(*http.Request) *http.Response
	// Matcher decides whether the request must be handled by the handler it's paired with.
	Matcher func(*http.Request) bool
)

type entry struct {
	matcher Matcher
	handler Handler
}

type routeKey struct {
	method method.Method
	path   string
}

// Router dispatches every request to exactly one handler. Matchers are evaluated in
// the order of registration and the first one matching wins. If none matches, the
// fallback handler is called, which is NotFound unless overridden. So by that, every
// request gets a response.
type Router struct {
	entries  []entry
	routes   map[routeKey]struct{}
	prefixes map[string]struct{}
	fallback Handler
}

// New returns a router with no routes and NotFound as the fallback handler.
func New() *Router {
	return &Router{
		routes:   make(map[routeKey]struct{}),
		prefixes: make(map[string]struct{}),
		fallback: NotFound,
	}
}

// Match registers a handler for all the requests the matcher agrees to.
func (r *Router) Match(matcher Matcher, handler Handler) *Router {
	r.entries = append(r.entries, entry{
		matcher: matcher,
		handler: handler,
	})

	return r
}

// Route registers a handler for the exact method and path. Registering the same pair
// twice panics, as well as registering a method not listed in method.List.
func (r *Router) Route(m method.Method, path string, handler Handler) *Router {
	if !slices.Contains(method.List, m) {
		panic(fmt.Errorf("unsupported method: %s", m))
	}

	key := routeKey{m, path}
	if _, found := r.routes[key]; found {
		panic(fmt.Errorf("route already registered: %s %s", m, path))
	}

	r.routes[key] = struct{}{}

	return r.Match(func(request *http.Request) bool {
		return request.Method == m && request.Path == path
	}, handler)
}

// Get is a shortcut for Route(method.GET, ...)
func (r *Router) Get(path string, handler Handler) *Router {
	return r.Route(method.GET, path, handler)
}

// Post is a shortcut for Route(method.POST, ...)
func (r *Router) Post(path string, handler Handler) *Router {
	return r.Route(method.POST, path, handler)
}

// Fallback overrides the catch-all handler. Passing nil brings NotFound back.
func (r *Router) Fallback(handler Handler) *Router {
	if handler == nil {
		handler = NotFound
	}

	r.fallback = handler

	return r
}

// Handle selects the handler and returns its response. It never fails: a handler
// returning nil is substituted by the fallback, and the fallback returning nil
// by NotFound.
func (r *Router) Handle(request *http.Request) *http.Response {
	for _, e := range r.entries {
		if e.matcher(request) {
			if response := e.handler(request); response != nil {
				return response
			}

			break
		}
	}

	return r.onFallback(request)
}

// Dispatch handles the request and sends the response into the writer.
func (r *Router) Dispatch(request *http.Request, w io.Writer) error {
	return r.Handle(request).Send(w)
}

func (r *Router) onFallback(request *http.Request) *http.Response {
	if response := r.fallback(request); response != nil {
		return response
	}

	return NotFound(request)
}

const notFoundPage = "<h1>404 Not Found</h1>"

// NotFound is the default catch-all handler.
func NotFound(*http.Request) *http.Response {
	return http.NewResponse(status.NotFound, nil, notFoundPage)
}
