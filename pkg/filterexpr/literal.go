package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

var timeType = reflect.TypeOf(time.Time{})

// decodeLiteral turns a constant, a list of string constants or a timestamp("...") call into a Go value.
// Numbers decode as float64.
func decodeLiteral(expr *exprpb.Expr) (any, error) {
	if c := expr.GetConstExpr(); c != nil {
		return decodeConstant(c)
	}

	if list := expr.GetListExpr(); list != nil {
		values := make([]string, 0, len(list.GetElements()))
		for i, elem := range list.GetElements() {
			c := elem.GetConstExpr()
			if c == nil {
				return nil, fmt.Errorf("list literal element %d must be a constant", i)
			}
			s, ok := c.GetConstantKind().(*exprpb.Constant_StringValue)
			if !ok {
				return nil, errors.New("list literal elements must be strings")
			}
			values = append(values, s.StringValue)
		}
		return values, nil
	}

	if call := expr.GetCallExpr(); call != nil && call.GetFunction() == "timestamp" {
		return decodeTimestamp(call)
	}

	return nil, errors.New("right-hand side must be a literal, list literal, or timestamp() call")
}

func decodeConstant(c *exprpb.Constant) (any, error) {
	switch v := c.GetConstantKind().(type) {
	case *exprpb.Constant_StringValue:
		return v.StringValue, nil
	case *exprpb.Constant_Int64Value:
		return float64(v.Int64Value), nil
	case *exprpb.Constant_Uint64Value:
		return float64(v.Uint64Value), nil
	case *exprpb.Constant_DoubleValue:
		return v.DoubleValue, nil
	case *exprpb.Constant_BoolValue:
		return v.BoolValue, nil
	default:
		return nil, fmt.Errorf("literal type %T is not supported", v)
	}
}

func decodeTimestamp(call *exprpb.Expr_Call) (time.Time, error) {
	if call.GetTarget() != nil || len(call.GetArgs()) != 1 {
		return time.Time{}, errors.New("timestamp() expects a single string argument")
	}
	arg := call.GetArgs()[0].GetConstExpr().GetStringValue()
	if arg == "" {
		return time.Time{}, errors.New("timestamp() argument must be a non-empty string literal")
	}
	t, err := time.Parse(time.RFC3339Nano, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp literal %q is not RFC3339", arg)
	}
	return t, nil
}

// checkLiteral verifies the decoded value against the field kind and operator.
func checkLiteral(kind ValueKind, op Op, value any) error {
	if !kind.valid() {
		return fmt.Errorf("unsupported field kind %s", kind)
	}
	if op == OpIN {
		list, ok := value.([]string)
		if kind != KindString || !ok {
			return fmt.Errorf("expected list of %s literals", kind)
		}
		if len(list) == 0 {
			return errors.New("list literal must not be empty")
		}
		for _, item := range list {
			if item == "" {
				return errors.New("list literal must not contain empty strings")
			}
		}
		return nil
	}

	var ok bool
	switch kind {
	case KindString:
		_, ok = value.(string)
	case KindNumber:
		_, ok = value.(float64)
	case KindBool:
		_, ok = value.(bool)
		if ok && op != OpEQ {
			return fmt.Errorf("operator %q is not valid for %s fields", string(op), kind)
		}
	case KindTimestamp:
		_, ok = value.(time.Time)
	}
	if !ok {
		return fmt.Errorf("expected %s literal", kind)
	}
	return nil
}

// assign stores value into field, allocating pointers and converting to named types as needed.
func assign(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	case reflect.Interface:
		field.Set(reflect.ValueOf(value))
		return nil
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string-compatible destination, got %s", field.Kind())
		}
		field.SetString(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected slice of strings destination, got %s", field.Type())
		}
		out := reflect.MakeSlice(field.Type(), len(v), len(v))
		for i, item := range v {
			out.Index(i).SetString(item)
		}
		field.Set(out)
	case bool:
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("expected bool destination, got %s", field.Kind())
		}
		field.SetBool(v)
	case float64:
		return assignNumber(field, v)
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("expected time.Time destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}

func assignNumber(field reflect.Value, value float64) error {
	switch {
	case field.CanFloat():
		field.SetFloat(value)
		return nil
	case field.CanInt():
		if math.Trunc(value) != value {
			return fmt.Errorf("cannot assign non-integer value %v to integer field", value)
		}
		if field.OverflowInt(int64(value)) || value > math.MaxInt64 || value < math.MinInt64 {
			return fmt.Errorf("value %v overflows integer field", value)
		}
		field.SetInt(int64(value))
		return nil
	case field.CanUint():
		if math.Trunc(value) != value || value < 0 {
			return fmt.Errorf("cannot assign %v to unsigned integer field", value)
		}
		if value > math.MaxUint64 || field.OverflowUint(uint64(value)) {
			return fmt.Errorf("value %v overflows unsigned integer field", value)
		}
		field.SetUint(uint64(value))
		return nil
	}
	return fmt.Errorf("numeric assignment requires integer or float field, got %s", field.Kind())
}
