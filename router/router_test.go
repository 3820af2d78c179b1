package router

import (
	"bytes"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/method"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/stretchr/testify/require"
)

func newRequest(m method.Method, path string) *http.Request {
	request := http.NewRequest()
	request.Method = m
	request.Path = path

	return request
}

func getRouter() *Router {
	return New().
		Get("/", func(request *http.Request) *http.Response {
			return http.String(request, "index")
		}).
		Get("/greeting", func(request *http.Request) *http.Response {
			return http.String(request, "Hello, world!")
		}).
		Post("/echo", func(request *http.Request) *http.Response {
			return http.String(request, request.Body)
		}).
		Catch("/api/", func(request *http.Request) *http.Response {
			return http.String(request, "api: "+request.Path)
		})
}

func TestRouter(t *testing.T) {
	r := getRouter()

	t.Run("exact routes", func(t *testing.T) {
		resp := r.Handle(newRequest(method.GET, "/"))
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "index", resp.Body)

		resp = r.Handle(newRequest(method.GET, "/greeting"))
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "Hello, world!", resp.Body)

		request := newRequest(method.POST, "/echo")
		request.Body = "ping"
		resp = r.Handle(request)
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "ping", resp.Body)
	})

	t.Run("catcher", func(t *testing.T) {
		resp := r.Handle(newRequest(method.POST, "/api/shipping/orders"))
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "api: /api/shipping/orders", resp.Body)
	})

	t.Run("method mismatch", func(t *testing.T) {
		for _, request := range []*http.Request{
			newRequest(method.POST, "/"),
			newRequest(method.POST, "/greeting"),
			newRequest(method.GET, "/echo"),
			newRequest(method.Unknown, "/greeting"),
		} {
			resp := r.Handle(request)
			require.Equal(t, status.NotFound, resp.Code)
			require.Equal(t, status.Status("Not Found"), resp.Status)
		}
	})

	t.Run("query isn't stripped", func(t *testing.T) {
		resp := r.Handle(newRequest(method.GET, "/greeting?name=world"))
		require.Equal(t, status.NotFound, resp.Code)
	})
}

func TestTotality(t *testing.T) {
	r := getRouter()

	for i := 0; i < 100; i++ {
		for _, m := range []method.Method{method.Unknown, method.GET, method.POST} {
			path := "/" + uniuri.New()
			resp := r.Handle(newRequest(m, path))
			require.NotNil(t, resp)
			require.Equal(t, status.NotFound, resp.Code, m.String()+" "+path)
		}
	}

	resp := r.Handle(http.NewRequest())
	require.Equal(t, status.NotFound, resp.Code)
}

func TestIdempotence(t *testing.T) {
	r := getRouter()

	for _, tc := range []struct {
		Method method.Method
		Path   string
	}{
		{method.GET, "/"},
		{method.GET, "/greeting"},
		{method.POST, "/echo"},
		{method.GET, "/api/anything"},
		{method.GET, "/nonexistent"},
		{method.Unknown, ""},
	} {
		first := r.Handle(newRequest(tc.Method, tc.Path))
		second := r.Handle(newRequest(tc.Method, tc.Path))
		require.NotSame(t, first, second)
		require.Equal(t, first.Code, second.Code)
		require.Equal(t, first.Body, second.Body)
	}
}

func TestPriority(t *testing.T) {
	r := New().
		Catch("/static/", func(request *http.Request) *http.Response {
			return http.String(request, "catcher")
		}).
		Get("/static/special", func(request *http.Request) *http.Response {
			return http.String(request, "route")
		})

	require.Equal(t, "catcher", r.Handle(newRequest(method.GET, "/static/special")).Body)
}

func TestFallback(t *testing.T) {
	t.Run("custom", func(t *testing.T) {
		r := New().Fallback(func(request *http.Request) *http.Response {
			return http.Code(request, status.BadRequest)
		})

		require.Equal(t, status.BadRequest, r.Handle(newRequest(method.GET, "/")).Code)
	})

	t.Run("reset", func(t *testing.T) {
		r := New().Fallback(nil)
		require.Equal(t, status.NotFound, r.Handle(newRequest(method.GET, "/")).Code)
	})

	t.Run("handler returning nil", func(t *testing.T) {
		r := New().
			Get("/", func(*http.Request) *http.Response {
				return nil
			}).
			Fallback(func(request *http.Request) *http.Response {
				return http.String(request, "fallback").SetCode(status.NotFound)
			})

		resp := r.Handle(newRequest(method.GET, "/"))
		require.Equal(t, status.NotFound, resp.Code)
		require.Equal(t, "fallback", resp.Body)
	})

	t.Run("fallback returning nil", func(t *testing.T) {
		r := New().Fallback(func(*http.Request) *http.Response {
			return nil
		})

		resp := r.Handle(newRequest(method.GET, "/"))
		require.Equal(t, status.NotFound, resp.Code)
		require.Equal(t, notFoundPage, resp.Body)
	})
}

func TestDuplicates(t *testing.T) {
	require.Panics(t, func() {
		New().Get("/", http.Respond).Get("/", http.Respond)
	})

	require.Panics(t, func() {
		New().Catch("/static/", http.Respond).Catch("/static/", http.Respond)
	})

	require.NotPanics(t, func() {
		New().Get("/", http.Respond).Post("/", http.Respond)
	})
}

func TestRouteMethods(t *testing.T) {
	require.Panics(t, func() {
		New().Route(method.Unknown, "/", http.Respond)
	})

	require.Panics(t, func() {
		New().Route(method.POST+1, "/", http.Respond)
	})

	for _, m := range method.List {
		r := New().Route(m, "/", http.Respond)
		require.Equal(t, status.OK, r.Handle(newRequest(m, "/")).Code)
	}
}

func TestDispatch(t *testing.T) {
	r := getRouter()

	t.Run("matched", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, r.Dispatch(newRequest(method.GET, "/greeting"), &out))
		require.Equal(t,
			"HTTP/1.1 200 OK\r\nContent-Type:text/html\r\nContent-Length: 13\r\n\r\nHello, world!",
			out.String(),
		)
	})

	t.Run("not found", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, r.Dispatch(newRequest(method.GET, "/nowhere"), &out))
		require.Equal(t,
			"HTTP/1.1 404 Not Found\r\nContent-Type:text/html\r\nContent-Length: 22\r\n\r\n"+notFoundPage,
			out.String(),
		)
	})
}
