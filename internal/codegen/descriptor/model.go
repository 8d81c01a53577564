package descriptor

import (
	"strconv"
	"strings"
)

// Profile is a named, ordered set of typed properties to generate accessors for.
type Profile struct {
	Name          string     `json:"name"`          // Profile name as declared (may contain spaces)
	SanitizedName string     `json:"sanitizedName"` // Name with all spaces removed, usable as a class name
	Properties    []Property `json:"properties"`    // Declaration order is preserved into generated output
}

// NewProfile builds a Profile and derives its sanitized name.
func NewProfile(name string, props []Property) Profile {
	return Profile{
		Name:          name,
		SanitizedName: strings.ReplaceAll(name, " ", ""),
		Properties:    append([]Property(nil), props...),
	}
}

// Property is one named, typed field of a Profile.
type Property struct {
	Identifier string       `json:"identifier"`
	Type       PropertyType `json:"-"`
}

// PropertyType describes what kind of value a property holds.
// A nil PropertyType means no type information was provided.
type PropertyType interface {
	propertyType()
}

// Primitive is a scalar value of a fixed kind.
type Primitive struct {
	Kind PrimitiveKind
}

// Reference links to another schema entity.
type Reference struct {
	Name string
}

// Collection is a repeated value. Element may be nil.
type Collection struct {
	Element PropertyType
}

func (Primitive) propertyType()  {}
func (Reference) propertyType()  {}
func (Collection) propertyType() {}

// PrimitiveKind mirrors Property.Type.PrimitiveType on the wire.
type PrimitiveKind int32

const (
	Unknown PrimitiveKind = iota
	Boolean
	Int64
	String
	Decimal
	Double
	DateTimeOffset
	Duration
	Guid
)

var primitiveKindNames = map[PrimitiveKind]string{
	Unknown:        "UNKNOWN",
	Boolean:        "BOOLEAN",
	Int64:          "INT64",
	String:         "STRING",
	Decimal:        "DECIMAL",
	Double:         "DOUBLE",
	DateTimeOffset: "DATE_TIME_OFFSET",
	Duration:       "DURATION",
	Guid:           "GUID",
}

// String returns the wire enum name, or the number for values the schema does not declare.
func (k PrimitiveKind) String() string {
	if name, ok := primitiveKindNames[k]; ok {
		return name
	}
	return strconv.FormatInt(int64(k), 10)
}
