package apiv1

import (
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

func servicePath(serviceName string) string {
	return "/" + serviceName + "/"
}

func procedure(serviceName, method string) string {
	return servicePath(serviceName) + method
}

// handlerOptions puts the JSON codec ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	return connect.WithHandlerOptions(append([]connect.HandlerOption{WithJSON()}, opts...)...)
}

func clientOptions(opts []connect.ClientOption) connect.ClientOption {
	return connect.WithClientOptions(append([]connect.ClientOption{WithJSON()}, opts...)...)
}

// mount routes requests under a service path to the per-procedure handlers.
func mount(serviceName string, routes map[string]http.Handler) (string, http.Handler) {
	path := servicePath(serviceName)
	return path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func baseURL(url string) string {
	return strings.TrimRight(url, "/")
}
