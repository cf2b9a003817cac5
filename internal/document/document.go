// Package document maps records to and from the flat key/value documents kept
// in the remote document store.
//
// A document is a google.protobuf.Struct whose keys match the record's field
// tags exactly. Keys are case-sensitive and never normalized.
package document

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrWrongType is returned when a document value has the wrong kind for its field.
	ErrWrongType = errors.New("wrong value type")

	// ErrNotInteger is returned when an integer field holds a fractional,
	// non-finite or out-of-range number.
	ErrNotInteger = errors.New("not a 32-bit integer")

	// ErrUnknownKind is returned by ParseKind for unsupported record kinds.
	ErrUnknownKind = errors.New("unknown record kind")
)

// Kind names a record shape.
type Kind string

const (
	KindUser  Kind = "user"
	KindGroup Kind = "group"
)

// ParseKind converts a command-line or config value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindUser, KindGroup:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

var marshalOptions = protojson.MarshalOptions{
	Multiline:       true,
	EmitUnpopulated: true,
}

// Marshal renders a document as JSON.
func Marshal(doc *structpb.Struct) ([]byte, error) {
	data, err := marshalOptions.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// Unmarshal parses a JSON object into a document.
func Unmarshal(data []byte) (*structpb.Struct, error) {
	doc := &structpb.Struct{}
	if err := protojson.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// fieldSetter assigns one document value to a record field.
type fieldSetter func(v *structpb.Value) error

// populate walks the document and hands each known key to its setter.
// Unknown keys are skipped with a warning; null values leave the field untouched.
func populate(doc *structpb.Struct, kind Kind, setters map[string]fieldSetter) error {
	for key, v := range doc.GetFields() {
		set, ok := setters[key]
		if !ok {
			slog.Warn("No field for document key", "kind", kind, "key", key)
			continue
		}
		if v == nil {
			continue
		}
		if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
			continue
		}
		if err := set(v); err != nil {
			return fmt.Errorf("failed to decode %s field %q: %w", kind, key, err)
		}
	}
	return nil
}

func stringField(assign func(string)) fieldSetter {
	return func(v *structpb.Value) error {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return fmt.Errorf("%w: want string, got %s", ErrWrongType, kindName(v))
		}
		assign(s.StringValue)
		return nil
	}
}

func intField(assign func(int32)) fieldSetter {
	return func(v *structpb.Value) error {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return fmt.Errorf("%w: want number, got %s", ErrWrongType, kindName(v))
		}
		f := n.NumberValue
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return fmt.Errorf("%w: %v", ErrNotInteger, f)
		}
		if f < math.MinInt32 || f > math.MaxInt32 {
			return fmt.Errorf("%w: %v out of range", ErrNotInteger, f)
		}
		assign(int32(f))
		return nil
	}
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StructValue:
		return "object"
	case *structpb.Value_ListValue:
		return "list"
	default:
		return "null"
	}
}
