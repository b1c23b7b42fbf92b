// JSON codec for the MathJSON surface form described in spec.md §6: a
// shorthand form (bare number/string/identifier/array) and a full tagged
// form ({num,str,sym,fn,dict,metadata}). Rather than hand-rolling a second
// JSON tree type, the shorthand reader walks the document with
// github.com/tidwall/gjson (cheap, allocation-light path queries) and the
// writer builds it up with github.com/tidwall/sjson + tidwall/pretty,
// matching how the teacher's dependency set (go.mod) pulls in the tidwall
// family for JSON-shaped data even though the teacher itself only needs it
// transitively (internal/jsonvalue predates and parallels this codec).
package expr

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ToJSON renders e in MathJSON shorthand form where possible, falling back
// to the full tagged-object form for rationals, complex numbers, and
// dictionaries (which shorthand cannot represent unambiguously).
func ToJSON(e *Expression) string {
	return rawJSON(e)
}

// ToJSONPretty is ToJSON with indentation, useful for CLI output and
// golden-file fixtures.
func ToJSONPretty(e *Expression) string {
	return string(pretty.Pretty([]byte(ToJSON(e))))
}

func rawJSON(e *Expression) string {
	if e == nil {
		return "null"
	}
	switch e.kind {
	case KindSymbol:
		return fmt.Sprintf("%q", e.sym)
	case KindFloat:
		return fmt.Sprintf("%v", e.f64)
	case KindInteger:
		return e.bi.String()
	case KindString:
		return fmt.Sprintf("%q", "'"+e.str)
	case KindRational:
		obj, _ := sjson.Set("", "num", e.bi.String())
		obj, _ = sjson.Set(obj, "den", e.den.String())
		return obj
	case KindComplex:
		obj, _ := sjson.Set("", "re", e.f64)
		obj, _ = sjson.Set(obj, "im", e.im)
		return obj
	case KindError:
		arr := fmt.Sprintf("[%q,%q", "Error", e.sym)
		if e.detail != nil {
			arr += "," + rawJSON(e.detail)
		}
		return arr + "]"
	case KindDict:
		var sb strings.Builder
		sb.WriteString(`{"dict":{`)
		first := true
		for k, v := range e.dict {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(fmt.Sprintf("%q:%s", k, rawJSON(v)))
		}
		sb.WriteString("}}")
		return sb.String()
	case KindApply:
		var sb strings.Builder
		sb.WriteByte('[')
		sb.WriteString(rawJSON(e.head))
		for _, op := range e.ops {
			sb.WriteByte(',')
			sb.WriteString(rawJSON(op))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "null"
	}
}

// FromJSON parses a MathJSON document (shorthand or full form) into an
// Expression.
func FromJSON(doc string) (*Expression, error) {
	r := gjson.Parse(doc)
	return fromGJSON(r)
}

func fromGJSON(r gjson.Result) (*Expression, error) {
	switch r.Type {
	case gjson.Null:
		return nil, fmt.Errorf("unexpected null in MathJSON document")
	case gjson.String:
		s := r.String()
		if strings.HasPrefix(s, "'") {
			return String(strings.TrimPrefix(s, "'")), nil
		}
		return Symbol(s), nil
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) && !strings.ContainsAny(r.Raw, ".eE") {
			return IntegerFromInt64(int64(r.Num)), nil
		}
		return Float(r.Num), nil
	case gjson.JSON:
		if r.IsArray() {
			return fromArray(r)
		}
		return fromObject(r)
	default:
		return nil, fmt.Errorf("unsupported MathJSON node type %v", r.Type)
	}
}

func fromArray(r gjson.Result) (*Expression, error) {
	items := r.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("an application must have a head")
	}
	if items[0].String() == "Error" {
		kind := ""
		if len(items) > 1 {
			kind = items[1].String()
		}
		var detail *Expression
		if len(items) > 2 {
			d, err := fromGJSON(items[2])
			if err != nil {
				return nil, err
			}
			detail = d
		}
		return Error(kind, detail), nil
	}
	head, err := fromGJSON(items[0])
	if err != nil {
		return nil, err
	}
	ops := make([]*Expression, 0, len(items)-1)
	for _, it := range items[1:] {
		op, err := fromGJSON(it)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return Apply(head, ops...), nil
}

func fromObject(r gjson.Result) (*Expression, error) {
	if v := r.Get("num"); v.Exists() {
		num, ok1 := new(big.Int).SetString(v.String(), 10)
		den, ok2 := new(big.Int).SetString(r.Get("den").String(), 10)
		if ok1 && ok2 {
			return Rational(num, den), nil
		}
	}
	if r.Get("re").Exists() {
		return Complex(r.Get("re").Float(), r.Get("im").Float()), nil
	}
	if v := r.Get("sym"); v.Exists() {
		return Symbol(v.String()), nil
	}
	if v := r.Get("str"); v.Exists() {
		return String(v.String()), nil
	}
	if v := r.Get("fn"); v.Exists() {
		return fromArray(v)
	}
	if v := r.Get("dict"); v.Exists() {
		fields := map[string]*Expression{}
		var ferr error
		v.ForEach(func(key, val gjson.Result) bool {
			e, err := fromGJSON(val)
			if err != nil {
				ferr = err
				return false
			}
			fields[key.String()] = e
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		return Dictionary(fields), nil
	}
	return nil, fmt.Errorf("unrecognized MathJSON object: %s", r.Raw)
}
