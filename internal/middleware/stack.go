package middleware

import "net/http"

// Stack composes middleware into one. The first middleware is the outermost:
// it runs first on the request and last on the response.
//
//	stack := Stack(security.Handler, logging.Handler, metrics.Middleware)
//	mux.Handle("GET /items", stack(itemsHandler))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
