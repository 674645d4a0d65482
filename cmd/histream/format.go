package main

import (
	"fmt"
	"strings"

	"github.com/wippyai/histream/stream"
)

// formatValue renders an attribute value on one line. Arrays show at most
// limit elements.
func formatValue(a stream.Attribute, limit int) string {
	switch a.Type() {
	case stream.TypeU8:
		return fmt.Sprint(a.AsU8())
	case stream.TypeS8:
		return fmt.Sprint(a.AsS8())
	case stream.TypeU16:
		return fmt.Sprint(a.AsU16())
	case stream.TypeS16:
		return fmt.Sprint(a.AsS16())
	case stream.TypeU32:
		return fmt.Sprint(a.AsU32())
	case stream.TypeS32:
		return fmt.Sprint(a.AsS32())
	case stream.TypeU64:
		return fmt.Sprint(a.AsU64())
	case stream.TypeS64:
		return fmt.Sprint(a.AsS64())
	case stream.TypeFloat:
		return fmt.Sprint(a.AsFloat())
	case stream.TypeDouble:
		return fmt.Sprint(a.AsDouble())
	case stream.TypeString:
		return fmt.Sprintf("%q", a.AsString())

	case stream.TypeU8Array:
		return formatArray(a.AsU8Array(), limit)
	case stream.TypeS8Array:
		return formatArray(a.AsS8Array(), limit)
	case stream.TypeU16Array:
		return formatArray(a.AsU16Array(), limit)
	case stream.TypeS16Array:
		return formatArray(a.AsS16Array(), limit)
	case stream.TypeU32Array:
		return formatArray(a.AsU32Array(), limit)
	case stream.TypeS32Array:
		return formatArray(a.AsS32Array(), limit)
	case stream.TypeU64Array:
		return formatArray(a.AsU64Array(), limit)
	case stream.TypeS64Array:
		return formatArray(a.AsS64Array(), limit)
	case stream.TypeFloatArray:
		return formatArray(a.AsFloatArray(), limit)
	case stream.TypeDoubleArray:
		return formatArray(a.AsDoubleArray(), limit)

	case stream.TypeStringU8:
		return formatPair(a.AsStringU8())
	case stream.TypeStringS8:
		return formatPair(a.AsStringS8())
	case stream.TypeStringU16:
		return formatPair(a.AsStringU16())
	case stream.TypeStringS16:
		return formatPair(a.AsStringS16())
	case stream.TypeStringU32:
		return formatPair(a.AsStringU32())
	case stream.TypeStringS32:
		return formatPair(a.AsStringS32())
	case stream.TypeStringU64:
		return formatPair(a.AsStringU64())
	case stream.TypeStringS64:
		return formatPair(a.AsStringS64())
	case stream.TypeStringFloat:
		return formatPair(a.AsStringFloat())
	case stream.TypeStringDouble:
		return formatPair(a.AsStringDouble())

	case stream.TypeData:
		return fmt.Sprintf("%d bytes align %d", a.DataSize(), a.DataAlignment())
	case stream.TypeDataWithLayout:
		return fmt.Sprintf("%d bytes align %d {%s}", a.DataSize(), a.DataAlignment(), formatLayout(a.DataLayout()))
	}
	return "?"
}

func formatArray[T any](vals []T, limit int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		if i == limit {
			b.WriteString(" ...")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	if len(vals) > limit {
		fmt.Fprintf(&b, " (%d)", len(vals))
	}
	return b.String()
}

func formatPair[T any](s string, v T) string {
	return fmt.Sprintf("%q = %v", s, v)
}

func formatLayout(elems []stream.DataLayoutElement) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		if e.Count == 1 {
			parts[i] = e.Type.String()
		} else {
			parts[i] = fmt.Sprintf("%s[%d]", e.Type, e.Count)
		}
	}
	return strings.Join(parts, " ")
}
