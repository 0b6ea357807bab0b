package protocol

// Bounded checks value against b and returns a *RangeError when it exceeds b.Max.
//
// Only the upper bound is enforced. A value below b.Min passes; b.Min is
// carried into the error so callers can report the declared range.
//
// Command constructors call it before writing the value:
//
//	if err := protocol.Bounded(v, protocol.Range(10, 20)); err != nil {
//	    return protocol.Frame{}, err
//	}
func Bounded(value uint16, b Bounds) error {
	if value > b.Max {
		return &RangeError{Start: b.Min, End: b.Max}
	}
	return nil
}

// BoundedMax is Bounded with the lower bound defaulted to zero.
func BoundedMax(value, max uint16) error {
	return Bounded(value, Max(max))
}

// BoundedRange is Bounded over [min, max].
func BoundedRange(value, min, max uint16) error {
	return Bounded(value, Range(min, max))
}
