// Package filterexpr binds list request filters (a conjunctive CEL subset) and order_by clauses
// onto plain parameter structs that repositories evaluate.
package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
)

// Msg is any list request exposing raw filter and order_by inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind is the literal type a filter field accepts.
type ValueKind string

const (
	KindString    ValueKind = "string"
	KindNumber    ValueKind = "number"
	KindBool      ValueKind = "bool"
	KindTimestamp ValueKind = "timestamp"
)

// Op is a comparison a filter field may allow.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
	OpCT  Op = "contains"
	OpIN  Op = "in"
)

// SetterFunc assigns a decoded literal to a params field when the default conversion does not fit.
type SetterFunc func(field reflect.Value, value any) error

// FilterField maps each allowed Op of a filter identifier to the params field receiving its literal.
type FilterField struct {
	Kind   ValueKind
	Ops    map[Op]string
	Setter SetterFunc
}

// OrderField names the attribute an order key sorts by.
type OrderField struct {
	Expr string
}

// OrderSchema whitelists order keys. FallbackKey breaks ties when the request names a single key.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// ResourceSchema is the filter and order contract of one list endpoint.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

func (s OrderSchema) validate() error {
	if s.DefaultPrimary == "" {
		return errors.New("order schema default primary key required")
	}
	if s.FallbackKey == "" {
		return errors.New("order schema fallback key required")
	}
	if _, ok := s.Fields[s.DefaultPrimary]; !ok {
		return fmt.Errorf("order key %q missing from schema fields", s.DefaultPrimary)
	}
	if _, ok := s.Fields[s.FallbackKey]; !ok {
		return fmt.Errorf("fallback order key %q missing from schema fields", s.FallbackKey)
	}
	if len(s.Fields) < 2 {
		return errors.New("order schema requires at least two keys")
	}
	return nil
}

func (k ValueKind) valid() bool {
	switch k {
	case KindString, KindNumber, KindBool, KindTimestamp:
		return true
	}
	return false
}
