package calcom

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"
)

type optState uint8

const (
	stateUnset optState = iota
	stateNull
	stateSet
)

// Opt is a model field that distinguishes a value that was never set, an
// explicit null, and a set value. The zero Opt is unset.
type Opt[T any] struct {
	v  T
	st optState
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, st: stateSet}
}

// Null returns an Opt explicitly set to null.
func Null[T any]() Opt[T] {
	return Opt[T]{st: stateNull}
}

// FromPtr returns Some(*p), or an unset Opt when p is nil.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

// Get returns the value and whether one is set.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.st == stateSet
}

// Value returns the value, or the zero T when unset or null.
func (o Opt[T]) Value() T {
	return o.v
}

// Ptr returns a pointer to a copy of the value, or nil when unset or null.
func (o Opt[T]) Ptr() *T {
	if o.st != stateSet {
		return nil
	}
	v := o.v
	return &v
}

// IsSet reports whether the field was provided, including as null.
func (o Opt[T]) IsSet() bool { return o.st != stateUnset }

// IsNull reports whether the field was explicitly set to null.
func (o Opt[T]) IsNull() bool { return o.st == stateNull }

// Set stores v.
func (o *Opt[T]) Set(v T) {
	o.v = v
	o.st = stateSet
}

// SetNull marks the field as explicitly null.
func (o *Opt[T]) SetNull() {
	var zero T
	o.v = zero
	o.st = stateNull
}

// Unset clears the field.
func (o *Opt[T]) Unset() {
	*o = Opt[T]{}
}

func (o Opt[T]) String() string {
	switch o.st {
	case stateNull:
		return "null"
	case stateSet:
		return fmt.Sprint(o.v)
	default:
		return "<unset>"
	}
}

// optField is the read side of an Opt seen through reflection.
type optField interface {
	state() optState
	value() any
	wire(dateFormat string) any
	elemType() reflect.Type
}

// optFieldSetter is the write side of an Opt seen through reflection.
type optFieldSetter interface {
	decode(wire any, dateFormat string) error
}

func (o Opt[T]) state() optState { return o.st }

func (o Opt[T]) value() any { return o.v }

func (o Opt[T]) elemType() reflect.Type { return reflect.TypeFor[T]() }

// wire returns the JSON-ready form of the value.
func (o Opt[T]) wire(dateFormat string) any {
	switch v := any(o.v).(type) {
	case Date:
		return FormatDate(v, dateFormat)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}
	return o.v
}

// decode sets the value from its wire form.
func (o *Opt[T]) decode(wire any, dateFormat string) error {
	if wire == nil {
		o.SetNull()
		return nil
	}

	switch p := any(&o.v).(type) {
	case *Date:
		switch w := wire.(type) {
		case Date:
			*p = w
		case string:
			d, err := ParseDate(w, dateFormat)
			if err != nil {
				return err
			}
			*p = d
		default:
			return fmt.Errorf("want date string, got %T", wire)
		}
		o.st = stateSet
		return nil
	case *time.Time:
		switch w := wire.(type) {
		case time.Time:
			*p = w
		case string:
			t, err := time.Parse(time.RFC3339Nano, w)
			if err != nil {
				return err
			}
			*p = t
		default:
			return fmt.Errorf("want date-time string, got %T", wire)
		}
		o.st = stateSet
		return nil
	}

	if err := assignWire(reflect.ValueOf(&o.v).Elem(), wire); err != nil {
		return err
	}
	o.st = stateSet
	return nil
}

// assignWire stores a decoded JSON value into dst, converting between the
// JSON-native types and the declared Go type.
func assignWire(dst reflect.Value, wire any) error {
	wv := reflect.ValueOf(wire)

	//exhaustive:ignore
	switch dst.Kind() {
	case reflect.String:
		if _, isNum := wire.(json.Number); isNum || wv.Kind() != reflect.String {
			return fmt.Errorf("want string, got %T", wire)
		}
		dst.SetString(wv.String())
	case reflect.Bool:
		if wv.Kind() != reflect.Bool {
			return fmt.Errorf("want boolean, got %T", wire)
		}
		dst.SetBool(wv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := wireInt(wire)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("integer %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := wireFloat(wire)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if wv.Kind() != reflect.Slice {
			return fmt.Errorf("want array, got %T", wire)
		}
		out := reflect.MakeSlice(dst.Type(), wv.Len(), wv.Len())
		for i := range wv.Len() {
			if err := assignWire(out.Index(i), wv.Index(i).Interface()); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		dst.Set(out)
	case reflect.Interface:
		dst.Set(wv)
	default:
		if wv.Type().AssignableTo(dst.Type()) {
			dst.Set(wv)
			return nil
		}
		b, err := json.Marshal(wire)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst.Addr().Interface())
	}
	return nil
}

func wireInt(wire any) (int64, error) {
	switch w := wire.(type) {
	case json.Number:
		return w.Int64()
	case float64:
		if w != math.Trunc(w) {
			return 0, fmt.Errorf("want integer, got %v", w)
		}
		return int64(w), nil
	}
	wv := reflect.ValueOf(wire)
	//exhaustive:ignore
	switch wv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wv.Int(), nil
	default:
		return 0, fmt.Errorf("want integer, got %T", wire)
	}
}

func wireFloat(wire any) (float64, error) {
	switch w := wire.(type) {
	case json.Number:
		return w.Float64()
	case float64:
		return w, nil
	}
	wv := reflect.ValueOf(wire)
	//exhaustive:ignore
	switch wv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(wv.Int()), nil
	case reflect.Float32:
		return wv.Float(), nil
	default:
		return 0, fmt.Errorf("want number, got %T", wire)
	}
}
