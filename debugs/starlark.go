package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/lox/scan"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case float64:
		return starlark.Float(v)

	case scan.TokenKind:
		return starlark.String(v.String())

	case scan.Span:
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("start"), starlark.MakeInt(v.Start))
		d.SetKey(starlark.String("end"), starlark.MakeInt(v.End))
		return d

	case scan.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("text"), starlark.String(v.Text))
		if v.Kind == scan.TokenNumber {
			d.SetKey(starlark.String("number"), starlark.Float(v.Number))
		}
		d.SetKey(starlark.String("span"), toStarlarkValue(v.Span))
		return d

	case *scan.Error:
		d := starlark.NewDict(5)
		d.SetKey(starlark.String("message"), starlark.String(v.Error()))
		d.SetKey(starlark.String("report"), starlark.String(v.Report()))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(v.Column))
		d.SetKey(starlark.String("span"), toStarlarkValue(v.Span()))
		return d

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		n := value.NumField()
		d := starlark.NewDict(n)
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
