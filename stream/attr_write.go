package stream

import (
	"math"

	"github.com/wippyai/histream/errors"
	"github.com/wippyai/histream/internal/layout"
	"github.com/wippyai/histream/tag"
)

// attrShape describes the bytes that follow an attribute header. The
// payload starts after layoutBytes at the next align boundary; a non-zero
// tail is one more scalar at the next align boundary after the payload.
type attrShape struct {
	typ         Type
	length      uint64
	layoutCount uint8
	align       uint32
	size        uint64
	tail        uint32
}

func (s attrShape) place(hdrEnd uint64) (payload, end uint64) {
	payload = layout.AlignTo64(hdrEnd+uint64(s.layoutCount)*layout.LayoutElementSize, uint64(s.align))
	end = payload + s.size
	if s.tail != 0 {
		end = layout.AlignTo64(end, uint64(s.align)) + uint64(s.tail)
	}
	return payload, end
}

// attrSlot is where an added attribute landed in the arena.
type attrSlot struct {
	header  uint32
	payload uint32
	end     uint32
}

// target returns the current node if an attribute may be added to it.
func (w *Writer) target(op string, t tag.Tag) (*frame, bool) {
	if !w.ready(op) {
		return nil, false
	}
	f := w.top()
	if f.lastChild != 0 {
		w.fail(errors.AttrChildOrder(f.tag, t))
		return nil, false
	}
	return f, true
}

// addAttr picks the header form, interns the tag, reserves the attribute
// and links it into the current node. The payload is left zeroed.
func (w *Writer) addAttr(f *frame, t tag.Tag, s attrShape) (attrSlot, bool) {
	h := layout.AlignTo64(uint64(w.arena.Len()), layout.HeaderAlign)

	form := layout.FormLong
	_, end := s.place(h + layout.AttrHeaderLongSize)
	if !s.typ.IsData() && s.length < layout.LengthSentinel {
		_, shortEnd := s.place(h + layout.AttrHeaderSize)
		if layout.AlignTo64(shortEnd, layout.HeaderAlign)-h <= layout.MaxShortOffset {
			form, end = layout.FormShort, shortEnd
		}
	}
	footprint := layout.AlignTo64(end, layout.HeaderAlign) - h
	if footprint > layout.MaxAttrSize || s.length > math.MaxUint32 {
		w.fail(errors.AttributeOverflow(f.tag, t, footprint, layout.MaxAttrSize))
		return attrSlot{}, false
	}

	idx, ok := w.tags.intern(t)
	if !ok {
		w.fail(errors.TagOverflow(f.tag, t, MaxAttributeTags))
		return attrSlot{}, false
	}

	off, err := w.arena.Reserve(uint32(end-h), layout.HeaderAlign)
	if err != nil {
		w.failAlloc(err, f.tag, t)
		return attrSlot{}, false
	}
	payload, _ := s.place(uint64(off) + uint64(form.Size()))

	hdr := layout.AttrHeader{
		Form:     form,
		TagIndex: idx,
		Type:     uint8(s.typ),
		Length:   uint32(s.length),
	}
	if s.typ.IsData() {
		hdr.LayoutCount = s.layoutCount
		hdr.Align = uint8(s.align)
		hdr.EncodeData(w.arena.Slice(off, form.Size()))
	} else {
		hdr.Encode(w.arena.Slice(off, form.Size()))
	}

	if f.lastAttr != 0 {
		dist := off - f.lastAttr
		if f.lastForm == layout.FormShort && dist > layout.MaxShortOffset {
			w.fail(errors.OffsetOverflow(f.tag, "attribute", uint64(dist), layout.MaxShortOffset))
			return attrSlot{}, false
		}
		layout.PatchNext(w.arena.Slice(f.lastAttr, f.lastForm.Size()), f.lastForm, dist)
	}
	f.lastAttr, f.lastForm = off, form

	buf := w.arena.Bytes()
	count := layout.U32(buf, f.node+layout.NodeAttrCountOffset)
	layout.PutU32(buf, f.node+layout.NodeAttrCountOffset, count+1)

	return attrSlot{header: off, payload: uint32(payload), end: uint32(end)}, true
}

func addScalar[T Number](w *Writer, t tag.Tag, typ Type, v T) {
	f, ok := w.target("Add"+typ.String(), t)
	if !ok {
		return
	}
	size := sizeOf[T]()
	slot, ok := w.addAttr(f, t, attrShape{typ: typ, length: 1, align: size, size: uint64(size)})
	if !ok {
		return
	}
	putScalar(w.arena.Slice(slot.payload, size), v)
}

// addArray adds an array attribute of n elements, copying vals when non-nil,
// and returns a writable view of the payload.
func addArray[T Number](w *Writer, t tag.Tag, typ Type, vals []T, n int) []T {
	f, ok := w.target("Add"+typ.String(), t)
	if !ok {
		return nil
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		w.fail(errors.New(errors.PhaseWrite, errors.KindDataOverflow).
			Node(f.tag).
			Attr(t).
			Value(n).
			Detail("array length %d is out of range", n).
			Build())
		return nil
	}
	size := sizeOf[T]()
	bytes, ok := layout.SafeMulU32(uint32(n), size)
	if !ok {
		w.fail(errors.AttributeOverflow(f.tag, t, uint64(n)*uint64(size), layout.MaxAttrSize))
		return nil
	}
	slot, ok := w.addAttr(f, t, attrShape{typ: typ, length: uint64(n), align: size, size: uint64(bytes)})
	if !ok {
		return nil
	}
	dst := w.arena.Slice(slot.payload, bytes)
	if vals != nil {
		encode(dst, vals)
	}
	return view[T](dst)
}

func addStringScalar[T Number](w *Writer, t tag.Tag, typ Type, s string, v T) {
	f, ok := w.target("Add"+typ.String(), t)
	if !ok {
		return
	}
	size := sizeOf[T]()
	slot, ok := w.addAttr(f, t, attrShape{
		typ:    typ,
		length: uint64(len(s)),
		align:  size,
		size:   uint64(len(s)) + 1,
		tail:   size,
	})
	if !ok {
		return
	}
	copy(w.arena.Slice(slot.payload, uint32(len(s))), s)
	putScalar(w.arena.Slice(slot.end-size, size), v)
}

// AddString adds a NUL-terminated string attribute.
func (w *Writer) AddString(t tag.Tag, s string) {
	f, ok := w.target("AddString", t)
	if !ok {
		return
	}
	slot, ok := w.addAttr(f, t, attrShape{typ: TypeString, length: uint64(len(s)), align: 1, size: uint64(len(s)) + 1})
	if !ok {
		return
	}
	copy(w.arena.Slice(slot.payload, uint32(len(s))), s)
}

func validDataAlign(align uint32) bool {
	return layout.IsPowerOfTwo(align) && align <= layout.MaxDataAlign
}

// ReserveData adds an opaque payload of size zero bytes aligned on align,
// a power of two no larger than 64, and returns it for filling.
func (w *Writer) ReserveData(t tag.Tag, size, align uint32) []byte {
	return w.addData(t, nil, size, align)
}

// AddData adds a copy of data as an opaque payload aligned on align and
// returns the stored bytes.
func (w *Writer) AddData(t tag.Tag, data []byte, align uint32) []byte {
	return w.addData(t, data, uint32(min(uint64(len(data)), math.MaxUint32)), align)
}

func (w *Writer) addData(t tag.Tag, data []byte, size, align uint32) []byte {
	f, ok := w.target("AddData", t)
	if !ok {
		return nil
	}
	if uint64(len(data)) > math.MaxUint32 {
		w.fail(errors.AttributeOverflow(f.tag, t, uint64(len(data)), layout.MaxAttrSize))
		return nil
	}
	if !validDataAlign(align) {
		w.fail(errors.BadAlign(f.tag, t, align, "alignment must be a power of two no larger than 64"))
		return nil
	}
	slot, ok := w.addAttr(f, t, attrShape{typ: TypeData, length: uint64(size), align: align, size: uint64(size)})
	if !ok {
		return nil
	}
	dst := w.arena.Slice(slot.payload, size)
	copy(dst, data)
	return dst
}

// ReserveDataWithLayout adds a zeroed payload of size bytes holding records
// described by elems, and returns it for filling. size must be a multiple
// of the packed record size and align at least its largest field.
func (w *Writer) ReserveDataWithLayout(t tag.Tag, elems []DataLayoutElement, size, align uint32) []byte {
	return w.addDataWithLayout(t, elems, nil, size, align)
}

// AddDataWithLayout adds a copy of data as packed records described by
// elems and returns the stored bytes.
func (w *Writer) AddDataWithLayout(t tag.Tag, elems []DataLayoutElement, data []byte, align uint32) []byte {
	return w.addDataWithLayout(t, elems, data, uint32(min(uint64(len(data)), math.MaxUint32)), align)
}

func (w *Writer) addDataWithLayout(t tag.Tag, elems []DataLayoutElement, data []byte, size, align uint32) []byte {
	f, ok := w.target("AddDataWithLayout", t)
	if !ok {
		return nil
	}
	if uint64(len(data)) > math.MaxUint32 {
		w.fail(errors.AttributeOverflow(f.tag, t, uint64(len(data)), layout.MaxAttrSize))
		return nil
	}
	record, lerr := recordInfo(f.tag, t, elems)
	if lerr != nil {
		w.fail(lerr)
		return nil
	}
	if !validDataAlign(align) {
		w.fail(errors.BadAlign(f.tag, t, align, "alignment must be a power of two no larger than 64"))
		return nil
	}
	if align < record.Align {
		w.fail(errors.BadAlign(f.tag, t, align, "alignment is below the layout's largest field"))
		return nil
	}
	if size%record.Size != 0 {
		w.fail(errors.BadLayout(f.tag, t, "data size %d is not a multiple of record size %d", size, record.Size))
		return nil
	}

	slot, ok := w.addAttr(f, t, attrShape{
		typ:         TypeDataWithLayout,
		length:      uint64(size),
		layoutCount: uint8(len(elems)),
		align:       align,
		size:        uint64(size),
	})
	if !ok {
		return nil
	}
	desc := w.arena.Slice(slot.header+layout.AttrHeaderLongSize, uint32(len(elems))*layout.LayoutElementSize)
	for i, e := range elems {
		desc[2*i] = uint8(e.Type)
		desc[2*i+1] = e.Count
	}
	dst := w.arena.Slice(slot.payload, size)
	copy(dst, data)
	return dst
}

// recordInfo validates a data layout and returns its packed record size
// and minimum alignment.
func recordInfo(node, attr tag.Tag, elems []DataLayoutElement) (layout.Info, *errors.Error) {
	if len(elems) == 0 {
		return layout.Info{}, errors.BadLayout(node, attr, "layout has no elements")
	}
	if len(elems) > layout.MaxLayoutElements {
		return layout.Info{}, errors.BadLayout(node, attr, "layout has %d elements (max %d)", len(elems), layout.MaxLayoutElements)
	}
	fields := make([]layout.Field, len(elems))
	for i, e := range elems {
		if e.Type.Size() == 0 {
			return layout.Info{}, errors.BadLayout(node, attr, "layout element %d has invalid type %d", i, uint8(e.Type))
		}
		fields[i] = layout.Field{Size: e.Type.Size(), Count: uint32(e.Count)}
	}
	info := layout.Record(fields)
	if info.Size == 0 {
		return layout.Info{}, errors.BadLayout(node, attr, "layout describes an empty record")
	}
	return info, nil
}
