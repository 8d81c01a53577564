package descriptor

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	yaml "gopkg.in/yaml.v3"
)

// Format names a descriptor serialization.
type Format string

const (
	FormatBinary Format = "binary"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
)

// ParseFormat converts a flag value into a Format. "auto" and "" yield "",
// meaning the format is picked from the input path.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return "", nil
	case "binary", "pb", "binpb":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	case "text", "textproto", "txtpb", "pbtxt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported descriptor format: %s", s)
	}
}

// FormatFromPath picks a Format from the file extension. Unknown extensions are binary.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".txtpb", ".textproto", ".pbtxt":
		return FormatText
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatBinary
	}
}

// Decode parses exactly one Profile from data.
func Decode(data []byte, format Format) (Profile, error) {
	if format == "" {
		format = FormatBinary
	}
	md, err := profileDescriptor()
	if err != nil {
		return Profile{}, &DecodeError{Format: format, Err: fmt.Errorf("build descriptor schema: %w", err)}
	}

	msg := dynamicpb.NewMessage(md)
	if err := unmarshal(data, format, msg); err != nil {
		return Profile{}, &DecodeError{Format: format, Err: err}
	}
	return profileFromMessage(msg)
}

func unmarshal(data []byte, format Format, msg proto.Message) error {
	switch format {
	case FormatBinary:
		return proto.Unmarshal(data, msg)
	case FormatJSON:
		return protojson.Unmarshal(data, msg)
	case FormatText:
		return prototext.Unmarshal(data, msg)
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
		return unmarshalDocument(doc, msg)
	case FormatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
		return unmarshalDocument(tree.ToMap(), msg)
	default:
		return fmt.Errorf("unsupported descriptor format: %s", format)
	}
}

// unmarshalDocument feeds a generic document through protojson so YAML and TOML
// follow the same field naming and enum rules as JSON.
func unmarshalDocument(doc map[string]any, msg proto.Message) error {
	if doc == nil {
		doc = map[string]any{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-encode document: %w", err)
	}
	return protojson.Unmarshal(data, msg)
}

func profileFromMessage(m protoreflect.Message) (Profile, error) {
	fields := m.Descriptor().Fields()
	name := m.Get(fields.ByName("profile_name")).String()
	list := m.Get(fields.ByName("properties")).List()

	props := make([]Property, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		pm := list.Get(i).Message()
		pf := pm.Descriptor().Fields()
		ident := pm.Get(pf.ByName("name")).String()

		var pt PropertyType
		if typeField := pf.ByName("type"); pm.Has(typeField) {
			var err error
			pt, err = typeFromMessage(pm.Get(typeField).Message())
			if err != nil {
				return Profile{}, fmt.Errorf("property %q: %w", ident, err)
			}
		}
		props = append(props, Property{Identifier: ident, Type: pt})
	}
	return NewProfile(name, props), nil
}

func typeFromMessage(m protoreflect.Message) (PropertyType, error) {
	fd := m.WhichOneof(m.Descriptor().Oneofs().ByName("type"))
	if fd == nil {
		return nil, nil
	}
	v := m.Get(fd)
	switch fd.Name() {
	case "primitive":
		return Primitive{Kind: PrimitiveKind(v.Enum())}, nil
	case "reference":
		ref := v.Message()
		return Reference{Name: ref.Get(ref.Descriptor().Fields().ByName("name")).String()}, nil
	case "collection":
		coll := v.Message()
		var c Collection
		if ef := coll.Descriptor().Fields().ByName("element"); coll.Has(ef) {
			elem, err := typeFromMessage(coll.Get(ef).Message())
			if err != nil {
				return nil, fmt.Errorf("collection element: %w", err)
			}
			c.Element = elem
		}
		return c, nil
	default:
		return nil, &UnsupportedTypeShapeError{Shape: string(fd.Name())}
	}
}
