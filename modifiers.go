package pathedit

import "strings"

// Modifiers is the set of input modifiers held down during an operation.
// Callers pass them explicitly instead of consulting global key state.
type Modifiers uint8

const (
	// ModAlt toggles a segment between smooth and corner when selecting.
	ModAlt Modifiers = 1 << iota
	// ModMeta forces neighbor synchronization when dragging a handle,
	// regardless of the joint type.
	ModMeta
	ModCtrl
	ModShift
	// ModX deletes the point under the cursor when selecting.
	ModX
)

// Has reports whether all modifiers in o are set in m.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range [...]struct {
		mod  Modifiers
		name string
	}{
		{ModAlt, "alt"},
		{ModMeta, "meta"},
		{ModCtrl, "ctrl"},
		{ModShift, "shift"},
		{ModX, "x"},
	} {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}
