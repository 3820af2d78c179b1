package router

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/headers"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/mime"
	"github.com/indigo-web/tinyhttp/http/status"
)

// Catch registers a handler for every request with the path starting with the prefix,
// regardless of the method. Registering the same prefix twice panics.
func (r *Router) Catch(prefix string, handler Handler) *Router {
	if _, found := r.prefixes[prefix]; found {
		panic(fmt.Errorf("catcher already registered: %s", prefix))
	}

	r.prefixes[prefix] = struct{}{}

	return r.Match(func(request *http.Request) bool {
		return strings.HasPrefix(request.Path, prefix)
	}, handler)
}

// Static serves GET requests with the path starting with the prefix by files from the
// root directory. Requests of a missing file, a directory or a path trying to escape
// the root are passed to the fallback handler.
func (r *Router) Static(prefix, root string) *Router {
	prefix = withTrailingSlash(prefix)

	return r.Catch(prefix, func(request *http.Request) *http.Response {
		if request.Method != method.GET {
			return nil
		}

		path, _, _ := strings.Cut(strings.TrimPrefix(request.Path, prefix), "?")
		if !isSafe(path) {
			return nil
		}

		response, err := TryFile(filepath.Join(root, filepath.FromSlash(path)))
		if err != nil {
			return nil
		}

		return response
	})
}

// TryFile reads the whole file and returns it as a response body, with content-type
// guessed by the file extension.
func TryFile(path string) (*http.Response, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, status.ErrNotFound
	}

	if stat.IsDir() {
		return nil, status.ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, status.ErrInternalServerError
	}

	return http.NewResponse(
		status.OK,
		headers.New().Set("Content-Type", mime.ByPath(path)),
		string(content),
	), nil
}

// isSafe checks for path traversal (basically - double dots)
func isSafe(path string) bool {
	for _, segment := range strings.FieldsFunc(path, isSeparator) {
		if segment == ".." {
			return false
		}
	}

	return true
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func withTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}

	return path + "/"
}
