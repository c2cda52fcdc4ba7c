package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
)

// visualDecoder decodes and validates visual_data for one visualization type.
type visualDecoder func(raw json.RawMessage) (domain.VisualPayload, []domain.FieldError)

var visualDecoders = map[domain.VisualizationType]visualDecoder{
	domain.VisualizationMap:      decodeVisual[domain.MapVisual],
	domain.VisualizationTree:     decodeVisual[domain.TreeVisual],
	domain.VisualizationTimeline: decodeVisual[domain.TimelineVisual],
	domain.VisualizationGrid:     decodeVisual[domain.GridVisual],
}

// ValidateVisual checks visual_data against the schema of t and returns the
// typed payload. Any violation rejects the payload as a whole.
func ValidateVisual(t domain.VisualizationType, raw json.RawMessage) (domain.VisualPayload, error) {
	decode, ok := visualDecoders[t]
	if !ok {
		return nil, domain.NewValidationError("visualization_type", fmt.Sprintf("unsupported type %q", t))
	}

	payload, errs := decode(raw)
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return payload, nil
}

const visualPrefix = "visual_data"

func decodeVisual[T domain.VisualPayload](raw json.RawMessage) (domain.VisualPayload, []domain.FieldError) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, []domain.FieldError{{Field: visualPrefix, Message: "required"}}
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, []domain.FieldError{{Field: visualPrefix, Message: "must be valid JSON"}}
	}

	var v T
	if errs := kindErrors(visualPrefix, generic, reflect.TypeOf(v)); len(errs) > 0 {
		return nil, errs
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, []domain.FieldError{{Field: visualPrefix, Message: err.Error()}}
	}

	if errs := structErrors(visualPrefix+".", v); len(errs) > 0 {
		return nil, errs
	}
	return v, nil
}

// kindErrors checks the decoded JSON value v against the shape of t and
// reports every type mismatch with its full path, array indexes included.
// Nulls and absent keys are left to the struct tags.
func kindErrors(path string, v any, t reflect.Type) []domain.FieldError {
	if v == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	mismatch := func(want string) []domain.FieldError {
		return []domain.FieldError{{Field: path, Message: "must be " + want}}
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return mismatch("an object")
		}
		var errs []domain.FieldError
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			errs = append(errs, kindErrors(path+"."+name, obj[name], f.Type)...)
		}
		return errs

	case reflect.Slice:
		arr, ok := v.([]any)
		if !ok {
			return mismatch("an array")
		}
		var errs []domain.FieldError
		for i, item := range arr {
			errs = append(errs, kindErrors(fmt.Sprintf("%s[%d]", path, i), item, t.Elem())...)
		}
		return errs

	case reflect.String:
		if _, ok := v.(string); !ok {
			return mismatch("a string")
		}

	case reflect.Float32, reflect.Float64:
		if _, ok := v.(float64); !ok {
			return mismatch("a number")
		}

	case reflect.Int, reflect.Int32, reflect.Int64:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return mismatch("an integer")
		}
	}
	return nil
}
