package normalize

import (
	"bytes"
	"encoding/json"
)

// Shape tags which envelope a listing response arrived in.
// It is computed once at the boundary; extraction switches on it.
type Shape int

const (
	// ShapeMalformed is undecodable bytes or a scalar/null root
	ShapeMalformed Shape = iota
	// ShapePosts is {"posts": [...]}
	ShapePosts
	// ShapeDataPosts is {"data": {"posts": [...]}}
	ShapeDataPosts
	// ShapeContent is {"content": [...]}
	ShapeContent
	// ShapeDataContent is {"data": {"content": [...]}}
	ShapeDataContent
	// ShapeItems is {"items": [...]}
	ShapeItems
	// ShapeBareArray is a top-level array of records
	ShapeBareArray
	// ShapeEmptyObject is {}
	ShapeEmptyObject
	// ShapeUnknown is an object with none of the known list keys
	ShapeUnknown
)

var shapeNames = [...]string{
	ShapeMalformed:   "malformed",
	ShapePosts:       "posts",
	ShapeDataPosts:   "data.posts",
	ShapeContent:     "content",
	ShapeDataContent: "data.content",
	ShapeItems:       "items",
	ShapeBareArray:   "array",
	ShapeEmptyObject: "empty",
	ShapeUnknown:     "unknown",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "invalid"
	}
	return shapeNames[s]
}

// Envelope is a decoded response with its detected shape
type Envelope struct {
	Shape Shape
	Root  map[string]any
	Data  map[string]any
	List  []any
}

// Decode parses raw bytes (numbers kept as json.Number) and detects the shape
func Decode(raw []byte) Envelope {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Envelope{Shape: ShapeMalformed}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return Envelope{Shape: ShapeMalformed}
	}
	return Detect(v)
}

// Detect classifies an already decoded value
func Detect(v any) Envelope {
	switch t := v.(type) {
	case []any:
		return Envelope{Shape: ShapeBareArray, List: t}
	case map[string]any:
		env := Envelope{Root: t, Data: record(t["data"])}
		switch {
		case isList(t["posts"]):
			env.Shape, env.List = ShapePosts, t["posts"].([]any)
		case isList(env.Data["posts"]):
			env.Shape, env.List = ShapeDataPosts, env.Data["posts"].([]any)
		case isList(t["content"]):
			env.Shape, env.List = ShapeContent, t["content"].([]any)
		case isList(env.Data["content"]):
			env.Shape, env.List = ShapeDataContent, env.Data["content"].([]any)
		case isList(t["items"]):
			env.Shape, env.List = ShapeItems, t["items"].([]any)
		case len(t) == 0:
			env.Shape = ShapeEmptyObject
		default:
			env.Shape = ShapeUnknown
		}
		return env
	}
	return Envelope{Shape: ShapeMalformed}
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// record returns v as an object, or an empty one
func record(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
