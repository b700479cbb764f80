package httpkit

import "internhasha/internal/platform/net/middleware"

// Protected groups routes behind the auth gate. Nothing runs at wiring time
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
