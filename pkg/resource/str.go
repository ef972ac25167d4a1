package resource

// Str is a string given either literally or as a resource reference.
// The zero value is the empty literal.
type Str struct {
	text string
	ref  *Resource
}

// Text returns a literal Str.
func Text(s string) Str {
	return Str{text: s}
}

// Ref returns a Str backed by a resource reference.
func Ref(r Resource) Str {
	return Str{ref: &r}
}

// Literal returns the literal text and true, or "" and false for references.
func (s Str) Literal() (string, bool) {
	if s.ref != nil {
		return "", false
	}
	return s.text, true
}

// Resource returns the reference and true when s is resource-backed.
func (s Str) Resource() (Resource, bool) {
	if s.ref == nil {
		return Resource{}, false
	}
	return *s.ref, true
}

// IsZero reports whether s is the empty literal.
func (s Str) IsZero() bool {
	return s.ref == nil && s.text == ""
}

func (s Str) String() string {
	if s.ref != nil {
		return s.ref.String()
	}
	return s.text
}
