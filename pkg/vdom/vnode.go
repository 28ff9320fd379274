package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind       VKind       // Node type
	Tag        string      // Element tag name (e.g., "div")
	Props      Props       // Attributes
	Children   []*VNode    // Child nodes
	Key        string      // Reconciliation key
	Text       string      // For KindText and KindRaw
	Comp       Component   // For KindComponent
	HID        string      // Hydration ID (assigned during render)
	Directives []Directive // Element lifecycle directives
}

// Props holds attributes.
type Props map[string]any

// HasDirectives reports whether the node is an element carrying directives.
func (v *VNode) HasDirectives() bool {
	return v != nil && v.Kind == KindElement && len(v.Directives) > 0
}

// OwnsAttr reports whether one of the node's directives owns key.
func (v *VNode) OwnsAttr(key string) bool {
	if v == nil {
		return false
	}
	for _, d := range v.Directives {
		if d.Attr() == key {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
