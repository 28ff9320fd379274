package vdom

import "reflect"

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. Attributes owned by a directive on either node are never
// compared: a re-render cannot tell that the client holds a different value,
// so those attributes only change through the directive's Mount patch.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText, KindRaw:
		next.HID = prev.HID
		if prev.Text != next.Text && parentHID != "" {
			op := PatchSetText
			if prev.Kind == KindRaw {
				op = PatchReplaceNode
			}
			*patches = append(*patches, Patch{
				Op:    op,
				HID:   parentHID,
				Value: next.Text,
				Node:  next,
			})
		}
	case KindElement:
		if prev.Tag != next.Tag {
			*patches = append(*patches, Patch{
				Op:   PatchReplaceNode,
				HID:  prev.HID,
				Node: next,
			})
			return
		}
		next.HID = prev.HID
		diffProps(prev, next, patches)
		diffChildren(prev, next, prev.HID, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	case KindComponent:
		next.HID = prev.HID
		diffChildren(Expand(prev), Expand(next), parentHID, patches)
	}
}

// diffProps compares and patches attributes.
func diffProps(prev, next *VNode, patches *[]Patch) {
	skip := func(key string) bool {
		return prev.OwnsAttr(key) || next.OwnsAttr(key)
	}

	for key, prevVal := range prev.Props {
		if skip(key) {
			continue
		}
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if !reflect.DeepEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: AttrString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if skip(key) {
			continue
		}
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: AttrString(nextVal),
			})
		}
	}
}

// diffChildren handles children using positional matching.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	maxLen := len(prev.Children)
	if len(next.Children) > maxLen {
		maxLen = len(next.Children)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev.Children) {
			prevChild = prev.Children[i]
		}
		if i < len(next.Children) {
			nextChild = next.Children[i]
		}

		if prevChild == nil && nextChild != nil {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parentHID,
				Index:    i,
				Node:     nextChild,
			})
			continue
		}
		diff(prevChild, nextChild, parentHID, patches)
	}
}
