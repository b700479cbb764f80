// Package swaggerkit serves the gateway OpenAPI document and the swagger UI
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"
)

//go:embed openapi.json
var openapiDoc []byte

// docSource is swapped in tests
var docSource = func() []byte { return openapiDoc }

const apiBase = "/api/v1"

// failure responses every operation may produce, keyed by status
var defaultFailures = map[string]map[string]any{
	"400": failure("Bad Request", 400, 8, "email must be a valid email", "email"),
	"502": failure("Bad Gateway", 502, 12, "internhasha api returned 503", ""),
	"500": failure("Internal Server Error", 500, 1, "internal error", ""),
}

func failure(desc string, status, code int, msg, field string) map[string]any {
	ex := map[string]any{"status_code": status, "status": desc, "code": code, "error": msg}
	if field != "" {
		ex["field"] = field
	}
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": ex,
			},
		},
	}
}

// docHandler decorates the embedded document once and serves the bytes
func docHandler() http.HandlerFunc {
	render := sync.OnceValues(func() ([]byte, error) {
		var spec map[string]any
		if err := json.Unmarshal(docSource(), &spec); err != nil {
			return nil, err
		}
		decorate(spec)
		return json.Marshal(spec)
	})
	return func(w http.ResponseWriter, _ *http.Request) {
		body, err := render()
		if err != nil {
			http.Error(w, "openapi document is invalid", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}

// decorate pins the document to OAS 3.0.3 (the UI cannot render 3.1), points
// servers at the gateway base and fills in the shared failure responses
func decorate(spec map[string]any) {
	delete(spec, "swagger")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": apiBase}}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type":     "object",
			"required": []any{"status_code", "status"},
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer"},
				"error":       map[string]any{"type": "string"},
				"field":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
		}
	}

	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			opm, ok := op.(map[string]any)
			if !ok {
				continue
			}
			resps := child(opm, "responses")
			for status, resp := range defaultFailures {
				if _, ok := resps[status]; !ok {
					resps[status] = resp
				}
			}
		}
	}
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
