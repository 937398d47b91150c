// Package cast converts the string content of spreadsheet cells into Go field values.
package cast

import (
	"errors"
	"reflect"
	"strings"
	"time"

	spfcast "github.com/spf13/cast"
)

// Caster defines the function prototype for casting a string to a value.
type Caster func(s string) (interface{}, error)

// nolint:gochecknoglobals
var (
	// InvalidValue is returned along with errors.
	InvalidValue = reflect.Value{}

	// ErrNotSupported tells that no caster is registered for the type.
	ErrNotSupported = errors.New("casting not supported")
)

// casters defines default for basic types.
// nolint:gochecknoglobals
var casters = map[reflect.Type]Caster{
	reflect.TypeOf(false):            castBool,
	reflect.TypeOf(float32(0)):       func(s string) (interface{}, error) { return spfcast.ToFloat32E(s) },
	reflect.TypeOf(float64(0)):       func(s string) (interface{}, error) { return spfcast.ToFloat64E(s) },
	reflect.TypeOf(0):                func(s string) (interface{}, error) { return spfcast.ToIntE(s) },
	reflect.TypeOf(int8(0)):          func(s string) (interface{}, error) { return spfcast.ToInt8E(s) },
	reflect.TypeOf(int16(0)):         func(s string) (interface{}, error) { return spfcast.ToInt16E(s) },
	reflect.TypeOf(int32(0)):         func(s string) (interface{}, error) { return spfcast.ToInt32E(s) },
	reflect.TypeOf(int64(0)):         func(s string) (interface{}, error) { return spfcast.ToInt64E(s) },
	reflect.TypeOf(""):               func(s string) (interface{}, error) { return s, nil },
	reflect.TypeOf(uint(0)):          func(s string) (interface{}, error) { return spfcast.ToUintE(s) },
	reflect.TypeOf(uint8(0)):         func(s string) (interface{}, error) { return spfcast.ToUint8E(s) },
	reflect.TypeOf(uint16(0)):        func(s string) (interface{}, error) { return spfcast.ToUint16E(s) },
	reflect.TypeOf(uint32(0)):        func(s string) (interface{}, error) { return spfcast.ToUint32E(s) },
	reflect.TypeOf(uint64(0)):        func(s string) (interface{}, error) { return spfcast.ToUint64E(s) },
	reflect.TypeOf(time.Duration(0)): func(s string) (interface{}, error) { return spfcast.ToDurationE(s) },
}

// To casts the string s to a value of type t, which may be a pointer to a basic type.
func To(s string, t reflect.Type) (reflect.Value, error) {
	asPtr := t.Kind() == reflect.Ptr
	if asPtr {
		t = t.Elem()
	}

	caster, ok := casters[t]
	if !ok {
		return InvalidValue, ErrNotSupported
	}

	v, err := caster(s)
	if err != nil {
		return InvalidValue, err
	}

	rv := reflect.ValueOf(v)
	if !asPtr {
		return rv, nil
	}

	p := reflect.New(t)
	p.Elem().Set(rv)

	return p, nil
}

func castBool(s string) (interface{}, error) {
	switch strings.ToLower(s) {
	case "yes", "ok", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	return spfcast.ToBoolE(s)
}
