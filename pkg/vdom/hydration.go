package vdom

import "github.com/vango-dev/uniqid/pkg/uid"

// HIDPrefix prefixes every hydration ID.
const HIDPrefix = "h"

// NewHIDGenerator creates a generator issuing hydration IDs "h1", "h2", ...
// Hydration IDs address elements in patches; they are unrelated to the
// element's own id attribute.
func NewHIDGenerator() *uid.Generator {
	return uid.New(uid.WithPrefix(HIDPrefix), uid.WithName("hid"))
}

// AssignHIDs walks the tree and assigns HIDs to elements carrying directives.
// Elements that already have a HID keep it.
func AssignHIDs(node *VNode, gen *uid.Generator) {
	Walk(node, func(n *VNode) bool {
		Expand(n)
		if n.HasDirectives() && n.HID == "" {
			n.HID = gen.Next()
		}
		return true
	})
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	Walk(node, func(n *VNode) bool {
		if n.HID != "" {
			result[n.HID] = n
		}
		return true
	})
	return result
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountDirectives returns the number of elements carrying directives.
func CountDirectives(node *VNode) int {
	count := 0
	Walk(node, func(n *VNode) bool {
		if n.HasDirectives() {
			count++
		}
		return true
	})
	return count
}

// ClearHIDs removes all HIDs from the tree.
func ClearHIDs(node *VNode) {
	Walk(node, func(n *VNode) bool {
		n.HID = ""
		return true
	})
}
