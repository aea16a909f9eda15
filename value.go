package calcom

import (
	"strconv"
)

// Kind is the declared type of an operation parameter.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
	KindDate
	KindStringList
	KindIntList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindStringList:
		return "string list"
	case KindIntList:
		return "integer list"
	default:
		return "unknown"
	}
}

// IsList reports whether values of this kind are collections.
func (k Kind) IsList() bool {
	return k == KindStringList || k == KindIntList
}

// Value is a typed parameter argument. The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	b    bool
	date Date
	strs []string
	nums []int64
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float returns a number Value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// DateValue returns a date Value.
func DateValue(d Date) Value { return Value{kind: KindDate, date: d} }

// Strings returns a string list Value.
func Strings(s ...string) Value { return Value{kind: KindStringList, strs: s} }

// Ints returns an integer list Value.
func Ints(n ...int64) Value { return Value{kind: KindIntList, nums: n} }

// Kind returns the kind of v, or 0 if v is absent.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is absent.
func (v Value) IsZero() bool { return v.kind == 0 }

// format renders a scalar Value for the wire.
func (v Value) format(dateFormat string) string {
	//exhaustive:ignore
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return FormatDate(v.date, dateFormat)
	default:
		return ""
	}
}

// formatList renders each element of a list Value.
func (v Value) formatList() []string {
	//exhaustive:ignore
	switch v.kind {
	case KindStringList:
		return v.strs
	case KindIntList:
		out := make([]string, len(v.nums))
		for i, n := range v.nums {
			out[i] = strconv.FormatInt(n, 10)
		}
		return out
	default:
		return nil
	}
}

// pathArg returns the value handed to the path styler.
func (v Value) pathArg(dateFormat string) any {
	//exhaustive:ignore
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.b
	default:
		return v.format(dateFormat)
	}
}

// Args carries the arguments for one operation call: named parameter values
// and an optional body.
type Args struct {
	values map[string]Value
	body   any
}

// NewArgs returns an empty Args.
func NewArgs() *Args {
	return &Args{values: make(map[string]Value)}
}

// Set stores a parameter value. Zero values are ignored so optional
// arguments can be passed through unconditionally.
func (a *Args) Set(name string, v Value) *Args {
	if v.IsZero() {
		return a
	}
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	a.values[name] = v
	return a
}

// SetBody stores the request body.
func (a *Args) SetBody(body any) *Args {
	a.body = body
	return a
}

// Get returns the value stored under name.
func (a *Args) Get(name string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Body returns the request body.
func (a *Args) Body() any {
	if a == nil {
		return nil
	}
	return a.body
}

// stringArg returns the Value of a set Opt, or the zero Value.
func stringArg(o Opt[string]) Value {
	if v, ok := o.Get(); ok {
		return String(v)
	}
	return Value{}
}

func intArg(o Opt[int64]) Value {
	if v, ok := o.Get(); ok {
		return Int(v)
	}
	return Value{}
}

func dateArg(o Opt[Date]) Value {
	if v, ok := o.Get(); ok {
		return DateValue(v)
	}
	return Value{}
}

// intsArg returns Ints(n...) or the zero Value when n is empty.
func intsArg(n []int64) Value {
	if len(n) == 0 {
		return Value{}
	}
	return Ints(n...)
}
