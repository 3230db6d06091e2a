package bridge

import (
	"fmt"
	"time"

	"github.com/philipp01105/logfile/core"
)

// fieldOf converts an arbitrary value into a typed field.
func fieldOf(key string, v any) core.Field {
	switch val := v.(type) {
	case string:
		return core.String(key, val)
	case int:
		return core.Int(key, val)
	case int64:
		return core.Int64(key, val)
	case int32:
		return core.Int64(key, int64(val))
	case uint32:
		return core.Int64(key, int64(val))
	case float64:
		return core.Float64(key, val)
	case float32:
		return core.Float64(key, float64(val))
	case bool:
		return core.Bool(key, val)
	case time.Time:
		return core.Time(key, val)
	case time.Duration:
		return core.Duration(key, val)
	case error:
		return core.Err(key, val)
	case fmt.Stringer:
		return core.String(key, val.String())
	default:
		return core.Any(key, v)
	}
}

// fieldsOf converts alternating keys and values. Non-string keys are
// printed; a trailing key without value gets a nil value.
func fieldsOf(kv []any) []core.Field {
	if len(kv) == 0 {
		return nil
	}
	fields := make([]core.Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		fields = append(fields, fieldOf(key, v))
	}
	return fields
}
