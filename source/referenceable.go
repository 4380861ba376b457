package source

// Referenceable holds either a Ref (when the source mapping carries a $ref
// key) or a Value of type T, never both. R is supplied by the caller as the
// version-specific Reference type, since v3.0 and v3.1 References differ.
type Referenceable[R any, T any] struct {
	Ref   *R
	Value *T
}

// IsReference reports whether this slot holds a $ref rather than an inline T.
func (r Referenceable[R, T]) IsReference() bool { return r.Ref != nil }
