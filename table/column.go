package table

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

const (
	Unknown Type = iota
	Float
	Int
	Bool
	String
	Categorical
	Time
)

// Type is the value type of a column.
type Type uint8

func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Int:
		return "integer"
	case Bool:
		return "boolean"
	case String:
		return "string"
	case Categorical:
		return "categorical"
	case Time:
		return "datetime"
	}

	return "unknown"
}

// Column is a named, typed, append-only vector of values. Null
// positions are recorded in a roaring bitmap; the backing slice is
// padded on null appends so indices stay aligned with row numbers.
//
// Categorical columns are dictionary encoded: each row stores a code
// into a level list ordered by first appearance in the input.
type Column struct {
	name   string
	typ    Type
	length int
	nulls  *roaring.Bitmap

	floats []float64
	ints   []int64
	bools  []bool
	strs   []string
	times  []time.Time

	codes  []uint32
	levels []string
	seen   map[string]uint32
}

func NewColumn(name string, typ Type) *Column {
	c := &Column{
		name:  name,
		typ:   typ,
		nulls: roaring.New(),
	}

	if typ == Categorical {
		c.seen = make(map[string]uint32)
	}

	return c
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Type() Type {
	return c.typ
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return c.length
}

// IsNull reports whether the value at row i is null.
func (c *Column) IsNull(i int) bool {
	return c.nulls.Contains(uint32(i))
}

// NullCount returns the number of null rows.
func (c *Column) NullCount() int64 {
	return int64(c.nulls.GetCardinality())
}

// AppendNull appends a null row.
func (c *Column) AppendNull() {
	c.nulls.Add(uint32(c.length))
	c.pad()
	c.length++
}

// pad appends a zero value to the backing slice so row indices stay
// aligned after a null.
func (c *Column) pad() {
	switch c.typ {
	case Float:
		c.floats = append(c.floats, 0)
	case Int:
		c.ints = append(c.ints, 0)
	case Bool:
		c.bools = append(c.bools, false)
	case String:
		c.strs = append(c.strs, "")
	case Categorical:
		c.codes = append(c.codes, 0)
	case Time:
		c.times = append(c.times, time.Time{})
	}
}

func (c *Column) AppendFloat(v float64) {
	c.floats = append(c.floats, v)
	c.length++
}

func (c *Column) AppendInt(v int64) {
	c.ints = append(c.ints, v)
	c.length++
}

func (c *Column) AppendBool(v bool) {
	c.bools = append(c.bools, v)
	c.length++
}

// AppendString appends a text value. On categorical columns the value
// is dictionary encoded, adding a new level on first appearance.
func (c *Column) AppendString(v string) {
	if c.typ == Categorical {
		code, ok := c.seen[v]
		if !ok {
			code = uint32(len(c.levels))
			c.levels = append(c.levels, v)
			c.seen[v] = code
		}
		c.codes = append(c.codes, code)
		c.length++
		return
	}

	c.strs = append(c.strs, v)
	c.length++
}

func (c *Column) AppendTime(v time.Time) {
	c.times = append(c.times, v)
	c.length++
}

// AppendValue appends a dynamically typed value, converting between
// Go's numeric widths where the column type allows it. A nil value is
// appended as null. Values of an incompatible dynamic type are an
// error.
func (c *Column) AppendValue(v interface{}) error {
	if v == nil {
		c.AppendNull()
		return nil
	}

	switch c.typ {
	case Float:
		switch x := v.(type) {
		case float64:
			c.AppendFloat(x)
		case float32:
			c.AppendFloat(float64(x))
		default:
			return c.typeError(v)
		}

	case Int:
		switch x := v.(type) {
		case int64:
			c.AppendInt(x)
		case int32:
			c.AppendInt(int64(x))
		case int:
			c.AppendInt(int64(x))
		default:
			return c.typeError(v)
		}

	case Bool:
		x, ok := v.(bool)
		if !ok {
			return c.typeError(v)
		}
		c.AppendBool(x)

	case String, Categorical:
		switch x := v.(type) {
		case string:
			c.AppendString(x)
		case []byte:
			c.AppendString(string(x))
		default:
			return c.typeError(v)
		}

	case Time:
		x, ok := v.(time.Time)
		if !ok {
			return c.typeError(v)
		}
		c.AppendTime(x)

	default:
		return c.typeError(v)
	}

	return nil
}

func (c *Column) typeError(v interface{}) error {
	return fmt.Errorf("column %s: cannot store %T in %s column", c.name, v, c.typ)
}

// Float returns the value at row i. Only valid for Float columns on
// non-null rows.
func (c *Column) Float(i int) float64 {
	return c.floats[i]
}

// Int returns the value at row i. Only valid for Int columns on
// non-null rows.
func (c *Column) Int(i int) int64 {
	return c.ints[i]
}

// Bool returns the value at row i. Only valid for Bool columns on
// non-null rows.
func (c *Column) Bool(i int) bool {
	return c.bools[i]
}

// Str returns the text value at row i, resolving the dictionary for
// categorical columns. Only valid for String and Categorical columns
// on non-null rows.
func (c *Column) Str(i int) string {
	if c.typ == Categorical {
		return c.levels[c.codes[i]]
	}
	return c.strs[i]
}

// Time returns the value at row i. Only valid for Time columns on
// non-null rows.
func (c *Column) Time(i int) time.Time {
	return c.times[i]
}

// Value returns the value at row i as an interface, or nil when the
// row is null.
func (c *Column) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}

	switch c.typ {
	case Float:
		return c.floats[i]
	case Int:
		return c.ints[i]
	case Bool:
		return c.bools[i]
	case String, Categorical:
		return c.Str(i)
	case Time:
		return c.times[i]
	}

	return nil
}

// Levels returns the distinct values of a categorical column in first
// appearance order. Nil for other column types.
func (c *Column) Levels() []string {
	if c.typ != Categorical {
		return nil
	}

	levels := make([]string, len(c.levels))
	copy(levels, c.levels)
	return levels
}
