package protocol

import (
	"errors"

	"github.com/vango-dev/uniqid/pkg/vdom"
)

// PatchOp is the wire code of a patch operation. Values match vdom.PatchOp.
type PatchOp uint8

const (
	PatchSetText    PatchOp = 0x01
	PatchSetAttr    PatchOp = 0x02
	PatchRemoveAttr PatchOp = 0x03
	PatchRemoveNode PatchOp = 0x05
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchRemoveNode:
		return "RemoveNode"
	default:
		return "Unknown"
	}
}

// ErrUnknownPatchOp is returned when a payload carries an unsupported op.
var ErrUnknownPatchOp = errors.New("protocol: unknown patch op")

// Patch is the wire form of a DOM operation addressed by hydration ID.
type Patch struct {
	Op    PatchOp
	HID   string
	Key   string
	Value string
	Force bool
}

// NewSetAttrPatch creates a SetAttr patch.
func NewSetAttrPatch(hid, key, value string, force bool) Patch {
	return Patch{Op: PatchSetAttr, HID: hid, Key: key, Value: value, Force: force}
}

// NewSetTextPatch creates a SetText patch.
func NewSetTextPatch(hid, text string) Patch {
	return Patch{Op: PatchSetText, HID: hid, Value: text}
}

// NewRemoveAttrPatch creates a RemoveAttr patch.
func NewRemoveAttrPatch(hid, key string) Patch {
	return Patch{Op: PatchRemoveAttr, HID: hid, Key: key}
}

// NewRemoveNodePatch creates a RemoveNode patch.
func NewRemoveNodePatch(hid string) Patch {
	return Patch{Op: PatchRemoveNode, HID: hid}
}

// FromVDOM converts vdom patches to their wire form. Structural operations
// that need a serialized subtree are not part of the live resync and are
// dropped; the second return value counts them.
func FromVDOM(patches []vdom.Patch) ([]Patch, int) {
	out := make([]Patch, 0, len(patches))
	dropped := 0
	for _, p := range patches {
		switch p.Op {
		case vdom.PatchSetText:
			out = append(out, NewSetTextPatch(p.HID, p.Value))
		case vdom.PatchSetAttr:
			out = append(out, NewSetAttrPatch(p.HID, p.Key, p.Value, p.Force))
		case vdom.PatchRemoveAttr:
			out = append(out, NewRemoveAttrPatch(p.HID, p.Key))
		case vdom.PatchRemoveNode:
			out = append(out, NewRemoveNodePatch(p.HID))
		default:
			dropped++
		}
	}
	return out, dropped
}

// ToVDOM converts wire patches back to vdom patches.
func ToVDOM(patches []Patch) []vdom.Patch {
	out := make([]vdom.Patch, len(patches))
	for i, p := range patches {
		out[i] = vdom.Patch{
			Op:    vdom.PatchOp(p.Op),
			HID:   p.HID,
			Key:   p.Key,
			Value: p.Value,
			Force: p.Force,
		}
	}
	return out
}

// PatchesFrame is a sequenced batch of patches.
type PatchesFrame struct {
	Seq     uint64
	Patches []Patch
}

// EncodePatches encodes a PatchesFrame payload.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoder()
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a PatchesFrame using the provided encoder.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for _, p := range pf.Patches {
		encodePatch(e, p)
	}
}

func encodePatch(e *Encoder, p Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteString(p.HID)
	switch p.Op {
	case PatchSetText:
		e.WriteString(p.Value)
	case PatchSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Value)
		e.WriteBool(p.Force)
	case PatchRemoveAttr:
		e.WriteString(p.Key)
	}
}

// DecodePatches decodes a PatchesFrame payload.
func DecodePatches(data []byte) (*PatchesFrame, error) {
	d := NewDecoder(data)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	pf := &PatchesFrame{Seq: seq, Patches: make([]Patch, 0, count)}
	for i := 0; i < count; i++ {
		p, err := decodePatch(d)
		if err != nil {
			return nil, err
		}
		pf.Patches = append(pf.Patches, p)
	}
	return pf, nil
}

func decodePatch(d *Decoder) (Patch, error) {
	var p Patch
	op, err := d.ReadByte()
	if err != nil {
		return p, err
	}
	p.Op = PatchOp(op)
	if p.HID, err = d.ReadString(); err != nil {
		return p, err
	}

	switch p.Op {
	case PatchSetText:
		p.Value, err = d.ReadString()
	case PatchSetAttr:
		if p.Key, err = d.ReadString(); err != nil {
			return p, err
		}
		if p.Value, err = d.ReadString(); err != nil {
			return p, err
		}
		p.Force, err = d.ReadBool()
	case PatchRemoveAttr:
		p.Key, err = d.ReadString()
	case PatchRemoveNode:
	default:
		return p, ErrUnknownPatchOp
	}
	return p, err
}

// SplitPatches packs patches into frames whose encoded payload fits in
// maxPayload bytes and that hold at most MaxCollectionCount patches, so
// every frame decodes. Frames are numbered from firstSeq. A single patch that
// cannot fit on its own yields ErrFrameTooLarge.
func SplitPatches(firstSeq uint64, patches []Patch, maxPayload int) ([]*PatchesFrame, error) {
	var (
		frames []*PatchesFrame
		cur    = &PatchesFrame{Seq: firstSeq}
		e      = NewEncoder()
	)
	// Room for the seq and count varints.
	budget := maxPayload - 2*MaxVarintLen

	size := 0
	for _, p := range patches {
		e.Reset()
		encodePatch(e, p)
		n := e.Len()
		if n > budget {
			return nil, ErrFrameTooLarge
		}
		full := size+n > budget || len(cur.Patches) == MaxCollectionCount
		if full && len(cur.Patches) > 0 {
			frames = append(frames, cur)
			cur = &PatchesFrame{Seq: cur.Seq + 1}
			size = 0
		}
		cur.Patches = append(cur.Patches, p)
		size += n
	}
	return append(frames, cur), nil
}
