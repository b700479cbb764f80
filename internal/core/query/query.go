// Package query encodes ordered parameter lists into URL query strings.
// Slices become one repeated key per element; nil values are dropped.
package query

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is one key and its value. Value may be a scalar, a slice or array of
// scalars, a pointer to either, or nil
type Param struct {
	Key   string
	Value any
}

// P is shorthand for Param{Key: key, Value: v}
func P(key string, v any) Param { return Param{Key: key, Value: v} }

// Encode renders params in the given order.
// Keys are never sorted, so the caller's order is the wire order.
func Encode(params ...Param) string {
	var b strings.Builder
	add := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}

	for _, p := range params {
		rv, ok := deref(reflect.ValueOf(p.Value))
		if !ok {
			continue
		}
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
				// []byte is text, not a list of numbers
				add(p.Key, string(rv.Bytes()))
				continue
			}
			for i := 0; i < rv.Len(); i++ {
				ev, ok := deref(rv.Index(i))
				if !ok {
					continue
				}
				if s, ok := scalar(ev); ok {
					add(p.Key, s)
				}
			}
		default:
			if s, ok := scalar(rv); ok {
				add(p.Key, s)
			}
		}
	}
	return b.String()
}

// deref unwraps interfaces and pointers; ok is false for nil anywhere on the way
func deref(v reflect.Value) (reflect.Value, bool) {
	for {
		if !v.IsValid() {
			return v, false
		}
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, false
			}
			v = v.Elem()
		default:
			return v, true
		}
	}
}

// scalar renders the natural text form; unsupported kinds are skipped
func scalar(v reflect.Value) (string, bool) {
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}
