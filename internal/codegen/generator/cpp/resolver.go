package cpp

import (
	"fmt"

	"github.com/Alia5/accessorgen/internal/codegen/descriptor"
)

// PlaceholderType is returned for reference and collection properties.
// Those are not resolved into concrete accessors yet and need manual handling.
const PlaceholderType = "RedfishVariant"

var primitiveTypes = map[descriptor.PrimitiveKind]string{
	descriptor.Boolean:        "bool",
	descriptor.Int64:          "int64_t",
	descriptor.String:         "std::string",
	descriptor.Decimal:        "double",
	descriptor.Double:         "double",
	descriptor.DateTimeOffset: "absl::Time",
	descriptor.Duration:       "absl::Duration",
	descriptor.Guid:           "uint64_t",
}

// UnsupportedPrimitiveTypeError reports a primitive kind with no C++ mapping.
type UnsupportedPrimitiveTypeError struct {
	Kind descriptor.PrimitiveKind
}

func (e *UnsupportedPrimitiveTypeError) Error() string {
	return fmt.Sprintf("cannot map primitive type %q into a C++ type", e.Kind.String())
}

// ResolveType maps a property type to its C++ spelling.
// An unset type resolves to "" without error.
func ResolveType(t descriptor.PropertyType) (string, error) {
	switch pt := t.(type) {
	case nil:
		return "", nil
	case descriptor.Primitive:
		if cppType, ok := primitiveTypes[pt.Kind]; ok {
			return cppType, nil
		}
		return "", &UnsupportedPrimitiveTypeError{Kind: pt.Kind}
	case descriptor.Reference, descriptor.Collection:
		return PlaceholderType, nil
	default:
		return "", &descriptor.UnsupportedTypeShapeError{Shape: fmt.Sprintf("%T", t)}
	}
}
