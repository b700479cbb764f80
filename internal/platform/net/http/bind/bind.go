// Package bind decodes and validates request payloads for gateway handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	"internhasha/internal/platform/validate"

	"github.com/go-playground/validator/v10"
)

var jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam

// JSONOptions controls ParseJSON
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// maxBody fits a base64 encoded CV upload
const maxBody = 8 << 20

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: maxBody, DisallowUnknown: true}
}

// ParseJSON decodes one JSON value into T and validates it. Bodyless GET and
// DELETE yield the zero T; decode failures are ErrorCodeJSON and validation
// failures ErrorCodeValidation naming the field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			switch r.Method {
			case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
				return zero, nil
			}
			return zero, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := validate.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := validate.FieldAndMessage(err)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}
	return dst, nil
}

// QueryInt reads a non-negative int query parameter, def when absent
func QueryInt(r *http.Request, key string, def int) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a non-negative integer", key), key)
	}
	return n, nil
}

// QueryBool reads a boolean query parameter, false when absent
func QueryBool(r *http.Request, key string) (bool, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, perr.WithField(perr.InvalidArgf("%s must be true or false", key), key)
	}
	return b, nil
}

// QueryList collects repeated and comma separated values of key
func QueryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
