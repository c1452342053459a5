package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// orderKey is one `key [asc|desc]` segment of an order_by clause.
type orderKey struct {
	Key  string
	Desc bool
}

type ordering struct {
	Primary   orderKey
	Secondary orderKey
}

// parseOrderBy accepts up to two comma separated keys. A missing secondary key falls back to the
// schema fallback, or to the first other key by name when the fallback is already primary.
func parseOrderBy(raw string, schema OrderSchema) (ordering, error) {
	var keys []orderKey
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		k, err := parseOrderKey(parts, schema)
		if err != nil {
			return ordering{}, err
		}
		if lo.ContainsBy(keys, func(prev orderKey) bool { return prev.Key == k.Key }) {
			return ordering{}, fmt.Errorf("duplicate order key %q", k.Key)
		}
		keys = append(keys, k)
	}
	if len(keys) > 2 {
		return ordering{}, errors.New("order_by supports at most two keys")
	}

	ord := ordering{
		Primary:   orderKey{Key: schema.DefaultPrimary, Desc: schema.DefaultPrimaryDesc},
		Secondary: orderKey{Key: schema.FallbackKey, Desc: schema.FallbackDesc},
	}
	if len(keys) > 0 {
		ord.Primary = keys[0]
	}
	if len(keys) > 1 {
		ord.Secondary = keys[1]
	}
	if ord.Secondary.Key == ord.Primary.Key {
		names := lo.Keys(schema.Fields)
		slices.Sort(names)
		other, _ := lo.Find(names, func(name string) bool { return name != ord.Primary.Key })
		ord.Secondary = orderKey{Key: other}
	}
	return ord, nil
}

func parseOrderKey(parts []string, schema OrderSchema) (orderKey, error) {
	k := orderKey{Key: parts[0]}
	if _, ok := schema.Fields[k.Key]; !ok {
		return orderKey{}, fmt.Errorf("field %q cannot be used for ordering", k.Key)
	}
	switch len(parts) {
	case 1:
	case 2:
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			k.Desc = true
		default:
			return orderKey{}, fmt.Errorf("invalid direction %q for field %q", parts[1], k.Key)
		}
	default:
		return orderKey{}, fmt.Errorf("invalid order segment %q", strings.Join(parts, " "))
	}
	return k, nil
}

func (o ordering) assign(target reflect.Value) error {
	values := []struct {
		name  string
		value any
	}{
		{"PrimaryKey", o.Primary.Key},
		{"PrimaryDesc", o.Primary.Desc},
		{"SecondaryKey", o.Secondary.Key},
		{"SecondaryDesc", o.Secondary.Desc},
	}
	for _, v := range values {
		field, err := settableField(target, v.name)
		if err != nil {
			return err
		}
		if err := setConverted(field, reflect.ValueOf(v.value)); err != nil {
			return fmt.Errorf("field %q: %w", v.name, err)
		}
	}
	return nil
}

func setConverted(field, value reflect.Value) error {
	switch field.Kind() {
	case reflect.Interface:
		field.Set(value)
		return nil
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setConverted(field.Elem(), value)
	}
	if !value.Type().ConvertibleTo(field.Type()) {
		return fmt.Errorf("must be %s-compatible, got %s", value.Type(), field.Type())
	}
	field.Set(value.Convert(field.Type()))
	return nil
}
