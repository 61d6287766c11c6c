package lemon

// ArgKind tags the variant of a resolved argument.
type ArgKind int

const (
	// KindCheck is a presence-only argument.
	KindCheck ArgKind = iota
	// KindValue holds a single typed value.
	KindValue
	// KindList holds an ordered sequence of typed values.
	KindList
)

// String returns the variant name.
func (k ArgKind) String() string {
	switch k {
	case KindCheck:
		return "check"
	case KindValue:
		return "value"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Argument is implemented by every resolved argument.
type Argument interface {
	Kind() ArgKind
	Label() string
	Present() bool
}

// Check is a resolved boolean indicator: it is present iff its flag or key
// appeared on the command line.
type Check struct {
	label   string
	present bool
}

func (c *Check) Kind() ArgKind { return KindCheck }
func (c *Check) Label() string { return c.label }
func (c *Check) Present() bool { return c.present }

// Value is a resolved single-value argument.
type Value[T Scalar] struct {
	label       string
	value       T
	present     bool
	fromDefault bool
}

func (v *Value[T]) Kind() ArgKind { return KindValue }
func (v *Value[T]) Label() string { return v.label }

// Present is true when a token supplied the value or a default existed.
func (v *Value[T]) Present() bool { return v.present }

// FromDefault is true when the value came from Default rather than a token.
func (v *Value[T]) FromDefault() bool { return v.fromDefault }

// Get returns the value and whether one was resolved.
func (v *Value[T]) Get() (T, bool) { return v.value, v.present }

// Or returns the resolved value, or fallback when there is none.
func (v *Value[T]) Or(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}

// List is a resolved list argument.
type List[T Scalar] struct {
	label       string
	items       []T
	present     bool
	fromDefault bool
}

func (l *List[T]) Kind() ArgKind { return KindList }
func (l *List[T]) Label() string { return l.label }

// Present is true when a token run supplied the items or a default list was
// configured, mirroring Value.
func (l *List[T]) Present() bool { return l.present }

// FromDefault is true when the items came from DefaultList.
func (l *List[T]) FromDefault() bool { return l.fromDefault }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// At returns item i. It panics when i is out of range, like a slice index.
func (l *List[T]) At(i int) T { return l.items[i] }

// Items returns a copy of the resolved items.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
