// Package criteria evaluates nested boolean condition trees against a
// flattened record field map. Trees are stored as JSON on assignment rules:
// either {"all": [...]}, {"any": [...]}, or a leaf
// {"field": ..., "op": ..., "value": ...}.
//
// Evaluation fails closed: malformed trees, malformed leaves and unknown
// operators evaluate to false and never return an error to the caller.
package criteria

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Operator is a leaf comparison operator
type Operator string

const (
	OpEq        Operator = "eq"
	OpNe        Operator = "ne"
	OpIn        Operator = "in"
	OpNotIn     Operator = "not_in"
	OpContains  Operator = "contains"
	OpExists    Operator = "exists"
	OpNotExists Operator = "not_exists"
	OpGt        Operator = "gt"
	OpGte       Operator = "gte"
	OpLt        Operator = "lt"
	OpLte       Operator = "lte"
)

// Condition is one node of a parsed criteria tree. Exactly one branch is
// meaningful: All (conjunction), Any (disjunction), or the leaf fields.
// A nil slice means the key was absent; an empty "all" list is vacuously
// true and an empty "any" list is false, matching ordinary boolean folds.
type Condition struct {
	All []Condition `json:"all,omitempty"`
	Any []Condition `json:"any,omitempty"`

	Field string      `json:"field,omitempty"`
	Op    Operator    `json:"op,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// Parse decodes a stored criteria tree. The only error is invalid JSON;
// structurally odd trees parse fine and simply evaluate to false.
func Parse(raw json.RawMessage) (*Condition, error) {
	var cond Condition
	if err := json.Unmarshal(raw, &cond); err != nil {
		return nil, err
	}
	return &cond, nil
}

// Matches parses and evaluates raw criteria in one step. Unparseable
// criteria never match.
func Matches(raw json.RawMessage, fields map[string]interface{}) bool {
	cond, err := Parse(raw)
	if err != nil {
		return false
	}
	return cond.Matches(fields)
}

// Matches evaluates the tree against the record's field map. Pure: the same
// tree and fields always yield the same result.
func (c *Condition) Matches(fields map[string]interface{}) bool {
	if c == nil {
		return false
	}
	if c.All != nil {
		for i := range c.All {
			if !c.All[i].Matches(fields) {
				return false
			}
		}
		return true
	}
	if c.Any != nil {
		for i := range c.Any {
			if c.Any[i].Matches(fields) {
				return true
			}
		}
		return false
	}
	return c.matchLeaf(fields)
}

func (c *Condition) matchLeaf(fields map[string]interface{}) bool {
	if c.Field == "" || c.Op == "" {
		return false
	}

	actual := fields[c.Field] // absent -> nil

	switch c.Op {
	case OpEq:
		return looseEqual(actual, c.Value)
	case OpNe:
		return !looseEqual(actual, c.Value)
	case OpIn:
		list, ok := c.Value.([]interface{})
		if !ok {
			return false
		}
		return containsValue(list, actual)
	case OpNotIn:
		list, ok := c.Value.([]interface{})
		if !ok {
			return false
		}
		return !containsValue(list, actual)
	case OpContains:
		haystack, ok := actual.(string)
		if !ok {
			return false
		}
		needle, ok := c.Value.(string)
		if !ok {
			return false
		}
		return strings.Contains(haystack, needle)
	case OpExists:
		return present(actual)
	case OpNotExists:
		return !present(actual)
	case OpGt, OpGte, OpLt, OpLte:
		left, ok := toFloat64(actual)
		if !ok {
			return false
		}
		right, ok := toFloat64(c.Value)
		if !ok {
			return false
		}
		switch c.Op {
		case OpGt:
			return left > right
		case OpGte:
			return left >= right
		case OpLt:
			return left < right
		default:
			return left <= right
		}
	}

	// unknown operator: fail closed
	return false
}

// looseEqual compares case-insensitively when both operands are strings,
// numerically when both are numeric types, and strictly otherwise. Unlike
// the ordering operators it never coerces numeric strings; existing tenant
// rules depend on that asymmetry.
func looseEqual(a, b interface{}) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.EqualFold(as, bs)
		}
		return false
	}
	if af, ok := numeric(a); ok {
		if bf, ok := numeric(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func containsValue(list []interface{}, v interface{}) bool {
	for _, item := range list {
		if looseEqual(v, item) {
			return true
		}
	}
	return false
}

// present reports whether a field value counts as existing: non-nil and,
// for strings, non-empty.
func present(v interface{}) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// numeric converts numeric Go types only; strings are not coerced here.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// toFloat64 additionally parses numeric strings, since record fields often
// arrive stringly typed from upstream webhooks and forms.
func toFloat64(v interface{}) (float64, bool) {
	if f, ok := numeric(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}
