package filterexpr

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
)

// Binder is a compiled ResourceSchema. It is safe for concurrent use.
type Binder struct {
	schema ResourceSchema
	env    *cel.Env
}

// Compile validates schema and prepares the CEL environment declaring its filter identifiers.
func Compile(schema ResourceSchema) (*Binder, error) {
	if err := schema.Order.validate(); err != nil {
		return nil, err
	}

	opts := make([]cel.EnvOption, 0, len(schema.Filter)+1)
	for name, field := range schema.Filter {
		typ, err := celType(field.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		if len(field.Ops) == 0 {
			return nil, fmt.Errorf("field %q allows no operators", name)
		}
		opts = append(opts, cel.Variable(name, typ))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("build filter environment: %w", err)
	}
	return &Binder{schema: schema, env: env}, nil
}

// MustCompile is Compile for package-level schemas; it panics on an invalid schema.
func MustCompile(schema ResourceSchema) *Binder {
	b, err := Compile(schema)
	if err != nil {
		panic(fmt.Sprintf("filterexpr: %v", err))
	}
	return b
}

// Bind compiles schema and binds msg in one step.
func Bind[M Msg, P any](msg M, binding *P, schema ResourceSchema) error {
	b, err := Compile(schema)
	if err != nil {
		return err
	}
	return b.Bind(msg, binding)
}

// Bind parses the filter and order_by of msg into binding, a pointer to a params struct.
// Order results land in PrimaryKey, PrimaryDesc, SecondaryKey and SecondaryDesc.
func (b *Binder) Bind(msg Msg, binding any) error {
	target, err := structTarget(binding)
	if err != nil {
		return err
	}

	preds, err := b.parseFilter(msg.GetFilter())
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	for _, p := range preds {
		if err := b.apply(target, p); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}

	ord, err := parseOrderBy(msg.GetOrderBy(), b.schema.Order)
	if err != nil {
		return fmt.Errorf("order_by: %w", err)
	}
	return ord.assign(target)
}

func (b *Binder) apply(target reflect.Value, p predicate) error {
	rule, ok := b.schema.Filter[p.field]
	if !ok {
		return fmt.Errorf("field %q is not allowed", p.field)
	}
	name, ok := rule.Ops[p.op]
	if !ok {
		return fmt.Errorf("operator %q is not allowed for field %q", string(p.op), p.field)
	}
	if err := checkLiteral(rule.Kind, p.op, p.value); err != nil {
		return fmt.Errorf("field %q: %w", p.field, err)
	}

	field, err := settableField(target, name)
	if err != nil {
		return err
	}
	if rule.Setter != nil {
		if field.Kind() == reflect.Ptr && field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		if err := rule.Setter(field, p.value); err != nil {
			return fmt.Errorf("setter for field %q failed: %w", name, err)
		}
		return nil
	}
	if err := assign(field, p.value); err != nil {
		return fmt.Errorf("failed to assign field %q: %w", name, err)
	}
	return nil
}

func celType(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindNumber:
		return cel.DoubleType, nil
	case KindBool:
		return cel.BoolType, nil
	case KindTimestamp:
		return cel.TimestampType, nil
	}
	return nil, fmt.Errorf("unsupported field kind %q", kind)
}

func structTarget(binding any) (reflect.Value, error) {
	rv := reflect.ValueOf(binding)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.New("binding must be a non-nil pointer")
	}
	if rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("binding must point to a struct")
	}
	return rv.Elem(), nil
}

func settableField(target reflect.Value, name string) (reflect.Value, error) {
	field := target.FieldByName(name)
	if !field.IsValid() {
		return reflect.Value{}, fmt.Errorf("params struct %s has no field named %q", target.Type(), name)
	}
	if !field.CanSet() {
		return reflect.Value{}, fmt.Errorf("cannot set field %q on params struct", name)
	}
	return field, nil
}
