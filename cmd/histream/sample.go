package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/histream/stream"
	"github.com/wippyai/histream/tag"
)

func newSampleCommand() *cobra.Command {
	var (
		pageSize uint32
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "write a demonstration stream that uses every attribute kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := stream.NewWriter(stream.Options{PageSize: pageSize, MaxDepth: maxDepth})
			buf, err := buildSample(w)
			if err != nil {
				return err
			}
			defer w.Allocator().Free(buf)

			if err := os.WriteFile(args[0], buf, 0o644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(buf), args[0])
			return nil
		},
	}
	cmd.Flags().Uint32Var(&pageSize, "page-size", 0, "arena growth granularity in bytes (0 = default)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum node depth (0 = default)")
	return cmd
}

// recordLayout describes one 48-byte packed record of the sample payload.
var recordLayout = []stream.DataLayoutElement{
	{Type: stream.DataU64, Count: 1},
	{Type: stream.DataS64, Count: 1},
	{Type: stream.DataDouble, Count: 1},
	{Type: stream.DataFloat, Count: 2},
	{Type: stream.DataU16, Count: 1},
	{Type: stream.DataS16, Count: 1},
	{Type: stream.DataU32, Count: 1},
	{Type: stream.DataS32, Count: 1},
	{Type: stream.DataU8, Count: 2},
	{Type: stream.DataS8, Count: 2},
}

func sampleRecords(n int) []byte {
	var (
		s64 int64 = -10000
		s16 int16 = -4
		s32 int32 = -16
	)
	le := binary.LittleEndian
	rec := make([]byte, 48)
	le.PutUint64(rec[0:], 1000)
	le.PutUint64(rec[8:], uint64(s64))
	le.PutUint64(rec[16:], math.Float64bits(3.14))
	le.PutUint32(rec[24:], math.Float32bits(1.5))
	le.PutUint32(rec[28:], math.Float32bits(2.3))
	le.PutUint16(rec[32:], 3)
	le.PutUint16(rec[34:], uint16(s16))
	le.PutUint32(rec[36:], 0xbaadc0de)
	le.PutUint32(rec[40:], uint32(s32))
	copy(rec[44:], "abcd")

	out := make([]byte, 0, len(rec)*n)
	for range n {
		out = append(out, rec...)
	}
	return out
}

func series[T stream.Number](n int, start T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)
	}
	return out
}

// buildSample writes the demonstration stream and returns its buffer.
func buildSample(w *stream.Writer) ([]byte, error) {
	w.Begin()

	w.PushChild(tag.Must("nod1"))
	w.AddU8(tag.Must("u8te"), 11)
	w.AddS8(tag.Must("s8te"), -11)
	w.AddU16(tag.Must("u16t"), 2222)
	w.AddS16(tag.Must("s16t"), -2222)
	w.AddU32(tag.Must("u32t"), 333333)
	w.AddS32(tag.Must("s32t"), -333333)
	w.AddU64(tag.Must("u64t"), 0xdeadbeef00)
	w.AddS64(tag.Must("s64t"), -0xF000000000)
	w.AddFloat(tag.Must("flot"), 99.5)
	w.AddDouble(tag.Must("dobt"), 109.5)
	w.AddString(tag.Must("strt"), "sampleString")
	w.PopChild()

	w.PushChild(tag.Must("nod2"))
	w.AddU8Array(tag.Must("u8ar"), series[uint8](8, 1))
	w.AddS8Array(tag.Must("s8ar"), series[int8](8, 2))
	w.AddU16Array(tag.Must("u16a"), series[uint16](8, 3))
	w.AddS16Array(tag.Must("s16a"), series[int16](8, 4))
	w.AddU32Array(tag.Must("u32a"), series[uint32](8, 5))
	w.AddS32Array(tag.Must("s32a"), series[int32](8, 6))
	w.AddU64Array(tag.Must("u64a"), series[uint64](8, 7))
	w.AddS64Array(tag.Must("s64a"), series[int64](8, 8))
	w.AddFloatArray(tag.Must("farr"), series[float32](8, 3.14))
	w.AddDoubleArray(tag.Must("darr"), series[float64](8, 99.5))

	w.PushChild(tag.Must("nod3"))
	w.AddStringU8(tag.Must("su8t"), "u8", 8)
	w.AddStringS8(tag.Must("ss8t"), "s8", -8)
	w.AddStringU16(tag.Must("su16"), "u16", 16)
	w.AddStringS16(tag.Must("ss16"), "s16", -16)
	w.AddStringU32(tag.Must("su32"), "u32", 32)
	w.AddStringS32(tag.Must("ss32"), "s32", -32)
	w.AddStringU64(tag.Must("su64"), "u64", 64)
	w.AddStringS64(tag.Must("ss64"), "s64", -64)
	w.AddStringFloat(tag.Must("sflo"), "float", 3.14)
	w.AddStringDouble(tag.Must("sdob"), "double", -95.5)
	w.AddDataWithLayout(tag.Must("dawl"), recordLayout, sampleRecords(2), 16)
	w.AddData(tag.Must("data"), sampleRecords(2), 16)
	w.PopChild()

	w.PopChild()
	w.End()

	if err := w.Err(); err != nil {
		w.Release()
		return nil, err
	}
	return w.TakeBuffer(), nil
}
