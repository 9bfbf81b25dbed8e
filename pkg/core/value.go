package core

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind classifies the values held by a table cell or column
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindTime
	KindString
	KindMixed
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	default:
		return "mixed"
	}
}

// Normalize converts a raw cell into the canonical representation used by Table.
// Every numeric type becomes float64, json.Number is decoded, and pointers to
// time values are dereferenced. Unsupported values are stringified.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case string, bool, time.Time:
		return x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// KindOf reports the kind of a normalized value
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case time.Time:
		return KindTime
	case string:
		return KindString
	default:
		return KindMixed
	}
}

// Key returns a canonical identity for a normalized value. Two cells share a key
// exactly when they are equal, which makes it usable for grouping and pivoting.
func Key(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return "b:" + strconv.FormatBool(x)
	case float64:
		if math.IsNaN(x) {
			return "null"
		}
		return "n:" + strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return "t:" + x.UTC().Format(time.RFC3339Nano)
	case string:
		return "s:" + x
	default:
		return "x:" + fmt.Sprint(x)
	}
}

// Format renders a normalized value the way labels display it
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatFloat(x, 'f', 0, 64)
		}
		return strconv.FormatFloat(x, 'f', int(NumDecPlaces(x)), 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// Compare orders two normalized values. Values of different kinds are ordered by
// kind (null, bool, number, time, string); NaN sorts with null.
func Compare(a, b any) int {
	ka, kb := kindForOrder(a), kindForOrder(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	if ka == KindNull {
		return 0
	}

	switch x := a.(type) {
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case float64:
		y := b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case time.Time:
		return x.Compare(b.(time.Time))
	case string:
		return strings.Compare(x, b.(string))
	default:
		return strings.Compare(Key(a), Key(b))
	}
}

func kindForOrder(v any) Kind {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return KindNull
	}
	return KindOf(v)
}

// IsMissing reports whether a cell carries no value
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}
