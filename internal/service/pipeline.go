package service

import (
	"math"

	"grubdash/internal/domain"
)

// check is one validation stage. A nil result means the stage passed;
// otherwise the pipeline stops and the failure is returned as-is. Stages
// are pure: nothing is mutated until every stage has passed.
type check func() *domain.RequestError

func runChecks(checks ...check) *domain.RequestError {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// falsy reports whether a decoded JSON value counts as absent: null,
// false, zero, or the empty string.
func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	default:
		return false
	}
}

// positiveInt reports whether a decoded JSON value is a whole number
// strictly greater than zero, and returns it as an int if so. Values at
// or beyond 1<<53 are rejected: float64 stops representing integers
// exactly there, and converting them would overflow int.
func positiveInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f <= 0 || f >= 1<<53 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// idMatchesRoute passes when the payload carries no id of its own (any
// falsy value counts as no id), or when it names the same record the
// route does. A non-string id can never match a route id.
func idMatchesRoute(entity string, bodyID any, routeID string) check {
	return func() *domain.RequestError {
		if falsy(bodyID) {
			return nil
		}
		if s, ok := bodyID.(string); ok && s == routeID {
			return nil
		}
		return domain.BadRequest("%s id does not match route id. %s: %v, Route: %s",
			entity, entity, bodyID, routeID)
	}
}
