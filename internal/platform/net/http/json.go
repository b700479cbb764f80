package http

import (
	"net/http"

	"internhasha/internal/platform/net/http/bind"
)

// Call adapts a handler without a request body. A returned Response is
// written as is; any other value is wrapped in a 200 envelope.
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return reply(fn(r))
	})
}

// Bind decodes and validates the JSON body into T, then behaves like Call.
// Decode and validation failures never reach fn.
func Bind[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
