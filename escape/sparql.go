// Package escape turns Go values into SPARQL literals and IRI references.
package escape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Func is the escaping function handed to extensions.
type Func func(value any) string

// URI marks a string as an IRI so Sparql renders it as <...>.
type URI string

// Date marks a time whose date part should be rendered as xsd:date.
type Date time.Time

// Time marks a time whose clock part should be rendered as xsd:time.
type Time time.Time

var (
	stringReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)
	uriReplacer    = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `<`, `\<`, `>`, `\>`)
)

// Sparql escapes value according to its dynamic type. Unsupported types
// are logged on the global zap logger and yield an empty string.
func Sparql(value any) string {
	switch v := value.(type) {
	case string:
		return String(v)
	case URI:
		return URIRef(string(v))
	case time.Time:
		return DateTime(v)
	case Date:
		return DateLiteral(time.Time(v))
	case Time:
		return TimeOfDay(time.Time(v))
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return typed(strconv.FormatUint(uint64(v), 10), "integer")
	case uint8:
		return typed(strconv.FormatUint(uint64(v), 10), "integer")
	case uint16:
		return typed(strconv.FormatUint(uint64(v), 10), "integer")
	case uint32:
		return typed(strconv.FormatUint(uint64(v), 10), "integer")
	case uint64:
		return typed(strconv.FormatUint(v, 10), "integer")
	case float32:
		return typed(floatLexical(float64(v), 32), "float")
	case float64:
		return Float(v)
	default:
		zap.S().Warnw("Unknown escape type", "type", fmt.Sprintf("%T", value))
		return ""
	}
}

// String renders s as a triple-quoted literal.
func String(s string) string {
	return `"""` + stringReplacer.Replace(s) + `"""`
}

// URIRef renders s as an IRI reference.
func URIRef(s string) string {
	return "<" + uriReplacer.Replace(s) + ">"
}

// DateTime renders t as xsd:dateTime.
func DateTime(t time.Time) string {
	return typed(t.Format(time.RFC3339Nano), "dateTime")
}

// DateLiteral renders the date part of t as xsd:date.
func DateLiteral(t time.Time) string {
	return typed(t.Format(time.DateOnly), "date")
}

// TimeOfDay renders the clock part of t as xsd:time.
func TimeOfDay(t time.Time) string {
	return typed(t.Format(time.TimeOnly), "time")
}

// Int renders n as xsd:integer.
func Int(n int64) string {
	return typed(strconv.FormatInt(n, 10), "integer")
}

// Float renders f as xsd:float.
func Float(f float64) string {
	return typed(floatLexical(f, 64), "float")
}

// xsd spells the special values INF, -INF and NaN.
func floatLexical(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// Bool renders b as xsd:boolean.
func Bool(b bool) string {
	return typed(strconv.FormatBool(b), "boolean")
}

func typed(lexical, datatype string) string {
	return `"` + lexical + `"^^xsd:` + datatype
}
