package protocol

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vango-dev/uniqid/pkg/vdom"
)

func TestPatchesRoundTrip(t *testing.T) {
	pf := &PatchesFrame{
		Seq: 3,
		Patches: []Patch{
			NewSetAttrPatch("h1", "for", "id-1", true),
			NewSetAttrPatch("h2", "id", "id-1", false),
			NewSetTextPatch("h3", "Email"),
			NewRemoveAttrPatch("h4", "aria-describedby"),
			NewRemoveNodePatch("h5"),
		},
	}

	got, err := DecodePatches(EncodePatches(pf))
	if err != nil {
		t.Fatalf("DecodePatches() error = %v", err)
	}
	if !reflect.DeepEqual(got, pf) {
		t.Errorf("DecodePatches() = %+v, want %+v", got, pf)
	}
}

func TestPatchesForceFlagSurvives(t *testing.T) {
	pf := &PatchesFrame{Patches: []Patch{NewSetAttrPatch("h1", "id", "id-1", true)}}
	got, err := DecodePatches(EncodePatches(pf))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Patches[0].Force {
		t.Error("Force flag lost in transit")
	}
}

func TestDecodePatchesErrors(t *testing.T) {
	t.Run("unknown op", func(t *testing.T) {
		e := NewEncoder()
		e.WriteUvarint(1)
		e.WriteUvarint(1)
		e.WriteByte(0x7F)
		e.WriteString("h1")
		if _, err := DecodePatches(e.Bytes()); !errors.Is(err, ErrUnknownPatchOp) {
			t.Errorf("error = %v, want ErrUnknownPatchOp", err)
		}
	})
	t.Run("truncated", func(t *testing.T) {
		data := EncodePatches(&PatchesFrame{Patches: []Patch{NewSetAttrPatch("h1", "id", "x", true)}})
		if _, err := DecodePatches(data[:len(data)-2]); err == nil {
			t.Error("expected error for truncated payload")
		}
	})
}

func TestFromVDOM(t *testing.T) {
	in := []vdom.Patch{
		{Op: vdom.PatchSetAttr, HID: "h1", Key: "id", Value: "id-1", Force: true},
		{Op: vdom.PatchInsertNode, ParentID: "h0", Node: vdom.Div()},
		{Op: vdom.PatchSetText, HID: "h2", Value: "hi"},
	}
	out, dropped := FromVDOM(in)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	want := []Patch{
		{Op: PatchSetAttr, HID: "h1", Key: "id", Value: "id-1", Force: true},
		{Op: PatchSetText, HID: "h2", Value: "hi"},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("FromVDOM() = %+v, want %+v", out, want)
	}

	back := ToVDOM(out)
	if back[0].Op != vdom.PatchSetAttr || !back[0].Force || back[1].Op != vdom.PatchSetText {
		t.Errorf("ToVDOM() = %+v", back)
	}
}

func TestPatchOpString(t *testing.T) {
	if PatchSetAttr.String() != vdom.PatchSetAttr.String() {
		t.Errorf("op names diverge: %s vs %s", PatchSetAttr, vdom.PatchSetAttr)
	}
	if PatchOp(0xEE).String() != "Unknown" {
		t.Error("unknown op should stringify as Unknown")
	}
}

func TestSplitPatches(t *testing.T) {
	patches := make([]Patch, 50)
	for i := range patches {
		patches[i] = NewSetAttrPatch("h1", "id", "id-000000000000000000000000", true)
	}

	t.Run("fits in one", func(t *testing.T) {
		frames, err := SplitPatches(7, patches, MaxPayloadSize)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != 1 || frames[0].Seq != 7 || len(frames[0].Patches) != 50 {
			t.Errorf("frames = %d, seq = %d", len(frames), frames[0].Seq)
		}
	})

	t.Run("split", func(t *testing.T) {
		frames, err := SplitPatches(1, patches, 200)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) < 2 {
			t.Fatalf("frames = %d, want several", len(frames))
		}
		total := 0
		for i, f := range frames {
			if f.Seq != uint64(1+i) {
				t.Errorf("frame %d seq = %d", i, f.Seq)
			}
			if n := len(EncodePatches(f)); n > 200 {
				t.Errorf("frame %d payload = %d bytes", i, n)
			}
			total += len(f.Patches)
		}
		if total != len(patches) {
			t.Errorf("total patches = %d, want %d", total, len(patches))
		}
	})

	t.Run("empty", func(t *testing.T) {
		frames, err := SplitPatches(1, nil, MaxPayloadSize)
		if err != nil || len(frames) != 1 || len(frames[0].Patches) != 0 {
			t.Errorf("SplitPatches(nil) = %v, %v", frames, err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, err := SplitPatches(1, patches[:1], 30)
		if !errors.Is(err, ErrFrameTooLarge) {
			t.Errorf("error = %v, want ErrFrameTooLarge", err)
		}
	})

	t.Run("count capped", func(t *testing.T) {
		tiny := make([]Patch, 2*MaxCollectionCount+1)
		for i := range tiny {
			tiny[i] = NewRemoveNodePatch("")
		}
		frames, err := SplitPatches(1, tiny, MaxPayloadSize)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != 3 {
			t.Fatalf("frames = %d, want 3", len(frames))
		}
		for i, f := range frames {
			if len(f.Patches) > MaxCollectionCount {
				t.Errorf("frame %d holds %d patches", i, len(f.Patches))
			}
			if _, err := DecodePatches(EncodePatches(f)); err != nil {
				t.Errorf("frame %d does not decode: %v", i, err)
			}
		}
	})
}
