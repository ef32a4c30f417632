// Package decode turns untyped JSON values into typed fields. A Decoder wraps
// one JSON object and records the first coercion failure together with the
// key path, so resource constructors can read every field and check a single
// error at the end.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

var (
	// ErrInvalid matches every error produced by this package
	ErrInvalid = errors.New("invalid resource")
	// ErrMissing is returned for an absent or null required field
	ErrMissing = errors.New("required field missing")
	// ErrType is returned when a field holds a value of the wrong JSON type
	ErrType = errors.New("unexpected type")
	// ErrFormat is returned when a string does not parse as the expected type
	ErrFormat = errors.New("malformed value")
)

// Object is a decoded JSON object
type Object = map[string]interface{}

// backend timestamps without zone are UTC
const naiveLayout = "2006-01-02T15:04:05"

// FieldError locates a decoding failure
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Parse unmarshals raw JSON keeping numbers as json.Number
func Parse(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, &FieldError{Path: "$", Err: xerrors.Errorf("%v: %w", err, ErrFormat)}
	}
	return v, nil
}

// ParseObject parses raw JSON that must be an object
func ParseObject(data []byte) (Object, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return AsObject(v)
}

// AsObject asserts v is a JSON object
func AsObject(v interface{}) (Object, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &FieldError{Path: "$", Err: typeErr("object", v)}
	}
	return obj, nil
}

// AsArray asserts v is a JSON array
func AsArray(v interface{}) ([]interface{}, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, &FieldError{Path: "$", Err: typeErr("array", v)}
	}
	return arr, nil
}

// Decoder reads typed fields from one object
type Decoder struct {
	obj Object
	err error
}

func New(obj Object) *Decoder {
	d := &Decoder{obj: obj}
	if obj == nil {
		d.err = &FieldError{Path: "$", Err: ErrMissing}
	}
	return d
}

// Err returns the first failure
func (d *Decoder) Err() error {
	return d.err
}

// Fail records err for key unless an earlier failure exists
func (d *Decoder) Fail(key string, err error) {
	if d.err != nil || err == nil {
		return
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		d.err = &FieldError{Path: key + joinPath(fe.Path), Err: fe.Err}
		return
	}
	d.err = &FieldError{Path: key, Err: err}
}

// Has reports whether key is present and not null
func (d *Decoder) Has(key string) bool {
	v, ok := d.obj[key]
	return ok && v != nil
}

// Raw returns the untyped value under key
func (d *Decoder) Raw(key string) interface{} {
	return d.obj[key]
}

func (d *Decoder) required(key string) (interface{}, bool) {
	v, ok := d.obj[key]
	if !ok || v == nil {
		d.Fail(key, ErrMissing)
		return nil, false
	}
	return v, true
}

func (d *Decoder) String(key string) string {
	v, ok := d.required(key)
	if !ok {
		return ""
	}
	s, err := toString(v)
	d.Fail(key, err)
	return s
}

func (d *Decoder) OptString(key string) *string {
	if !d.Has(key) {
		return nil
	}
	s := d.String(key)
	return &s
}

func (d *Decoder) Int(key string) int64 {
	v, ok := d.required(key)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	d.Fail(key, err)
	return n
}

func (d *Decoder) OptInt(key string) *int64 {
	if !d.Has(key) {
		return nil
	}
	n := d.Int(key)
	return &n
}

func (d *Decoder) Float(key string) float64 {
	v, ok := d.required(key)
	if !ok {
		return 0
	}
	f, err := toFloat(v)
	d.Fail(key, err)
	return f
}

func (d *Decoder) OptFloat(key string) *float64 {
	if !d.Has(key) {
		return nil
	}
	f := d.Float(key)
	return &f
}

func (d *Decoder) Bool(key string) bool {
	v, ok := d.required(key)
	if !ok {
		return false
	}
	b, err := toBool(v)
	d.Fail(key, err)
	return b
}

func (d *Decoder) OptBool(key string) *bool {
	if !d.Has(key) {
		return nil
	}
	b := d.Bool(key)
	return &b
}

func (d *Decoder) Time(key string) time.Time {
	v, ok := d.required(key)
	if !ok {
		return time.Time{}
	}
	t, err := toTime(v)
	d.Fail(key, err)
	return t
}

func (d *Decoder) OptTime(key string) *time.Time {
	if !d.Has(key) {
		return nil
	}
	t := d.Time(key)
	return &t
}

// BigInt reads an arbitrary precision integer from a decimal string or an
// integral JSON number
func (d *Decoder) BigInt(key string) *big.Int {
	v, ok := d.required(key)
	if !ok {
		return new(big.Int)
	}
	n, err := ToBigInt(v)
	d.Fail(key, err)
	return n
}

func (d *Decoder) OptBigInt(key string) *big.Int {
	if !d.Has(key) {
		return nil
	}
	return d.BigInt(key)
}

func (d *Decoder) Strings(key string) []string {
	v, ok := d.required(key)
	if !ok {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		d.Fail(key, typeErr("array", v))
		return nil
	}
	res := make([]string, 0, len(arr))
	for i, item := range arr {
		s, err := toString(item)
		if err != nil {
			d.Fail(fmt.Sprintf("%s[%d]", key, i), err)
			return nil
		}
		res = append(res, s)
	}
	return res
}

// Object returns the nested object under key
func (d *Decoder) Object(key string) Object {
	v, ok := d.required(key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		d.Fail(key, typeErr("object", v))
		return nil
	}
	return obj
}

// Array returns the nested array under key
func (d *Decoder) Array(key string) []interface{} {
	v, ok := d.required(key)
	if !ok {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		d.Fail(key, typeErr("array", v))
		return nil
	}
	return arr
}

// Nested decodes the object under key with parse
func Nested[T any](d *Decoder, key string, parse func(Object) (*T, error)) *T {
	obj := d.Object(key)
	if obj == nil {
		return nil
	}
	res, err := parse(obj)
	if err != nil {
		d.Fail(key, err)
		return nil
	}
	return res
}

// OptNested is Nested for a nullable field
func OptNested[T any](d *Decoder, key string, parse func(Object) (*T, error)) *T {
	if !d.Has(key) {
		return nil
	}
	return Nested(d, key, parse)
}

// NestedArray decodes every object of the array under key with parse
func NestedArray[T any](d *Decoder, key string, parse func(Object) (*T, error)) []T {
	arr := d.Array(key)
	if arr == nil {
		return nil
	}
	res, err := Each(arr, parse)
	if err != nil {
		d.Fail(key, err)
		return nil
	}
	return res
}

// Each decodes every object of arr with parse
func Each[T any](arr []interface{}, parse func(Object) (*T, error)) ([]T, error) {
	res := make([]T, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &FieldError{Path: fmt.Sprintf("[%d]", i), Err: typeErr("object", item)}
		}
		v, err := parse(obj)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				return nil, &FieldError{Path: fmt.Sprintf("[%d]", i) + joinPath(fe.Path), Err: fe.Err}
			}
			return nil, &FieldError{Path: fmt.Sprintf("[%d]", i), Err: err}
		}
		res = append(res, *v)
	}
	return res, nil
}

func joinPath(p string) string {
	if p == "$" || p == "" {
		return ""
	}
	if strings.HasPrefix(p, "[") {
		return p
	}
	return "." + p
}

func typeErr(want string, v interface{}) error {
	return xerrors.Errorf("want %s, got %T: %w", want, v, ErrType)
}

func toString(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	}
	return "", typeErr("string", v)
}

func toInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		return 0, xerrors.Errorf("%q is not an integer: %w", n.String(), ErrFormat)
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, xerrors.Errorf("%v is not an integer: %w", n, ErrFormat)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, xerrors.Errorf("%q is not an integer: %w", n, ErrFormat)
		}
		return i, nil
	}
	return 0, typeErr("number", v)
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, xerrors.Errorf("%q is not a number: %w", n.String(), ErrFormat)
		}
		return f, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, xerrors.Errorf("%q is not a number: %w", n, ErrFormat)
		}
		return f, nil
	}
	return 0, typeErr("number", v)
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		res, err := strconv.ParseBool(b)
		if err != nil {
			return false, xerrors.Errorf("%q is not a boolean: %w", b, ErrFormat)
		}
		return res, nil
	}
	return false, typeErr("boolean", v)
}

func toTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case string:
		if res, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return res, nil
		}
		if res, err := time.ParseInLocation(naiveLayout, t, time.UTC); err == nil {
			return res, nil
		}
		if res, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", t, time.UTC); err == nil {
			return res, nil
		}
		return time.Time{}, xerrors.Errorf("%q is not a timestamp: %w", t, ErrFormat)
	case json.Number, float64, int, int64:
		// unix seconds
		sec, err := toInt(t)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, typeErr("timestamp", v)
}

// ToBigInt coerces a decimal string or integral number without passing
// through float64
func ToBigInt(v interface{}) (*big.Int, error) {
	var s string
	switch n := v.(type) {
	case string:
		s = strings.TrimSpace(n)
	case json.Number:
		s = n.String()
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return nil, xerrors.Errorf("%v is not an exact integer: %w", n, ErrFormat)
		}
		return big.NewInt(int64(n)), nil
	default:
		return nil, typeErr("integer string", v)
	}
	res, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("%q is not a decimal integer: %w", s, ErrFormat)
	}
	return res, nil
}
