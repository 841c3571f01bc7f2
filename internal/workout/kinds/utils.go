package kinds

import (
	"math"

	"github.com/kubev2v/fitness-tracker/internal/workout"
)

func getInt(params map[string]workout.Param, key string) (int, error) {
	p, ok := params[key]
	if !ok {
		return 0, workout.NewErrInvalidField(key, "missing")
	}
	switch v := p.Value.(type) {
	case float64:
		// JSON and YAML decode every number as float64
		if !isIntegral(v) || v >= math.MaxInt || v < math.MinInt {
			return 0, workout.NewErrInvalidField(p.Key, "%v is not an integer", v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	default:
		return 0, workout.NewErrInvalidField(p.Key, "not a number (type: %T)", p.Value)
	}
}

func getFloat(params map[string]workout.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0.0, workout.NewErrInvalidField(key, "missing")
	}
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	default:
		return 0.0, workout.NewErrInvalidField(p.Key, "not a number (type: %T)", p.Value)
	}
}

func isIntegral(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// floorDiv returns the floor of a / b computed from the remainder, so a quotient that
// rounds up to an integer is still floored to the value below it.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1.0
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1.0
	}
	return floor
}
