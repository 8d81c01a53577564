package descriptor

import "fmt"

// DecodeError reports descriptor bytes that do not match the expected format.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s descriptor: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedTypeShapeError reports a property type case this generator does not know.
// It means the schema vocabulary was extended without updating the generator.
type UnsupportedTypeShapeError struct {
	Shape string
}

func (e *UnsupportedTypeShapeError) Error() string {
	return fmt.Sprintf("unsupported property type shape %q", e.Shape)
}
