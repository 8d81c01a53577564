package descriptor

import (
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	schemaFileName = "accessorgen/descriptor.proto"
	schemaPackage  = "accessorgen.descriptor"
)

// profileDescriptor lazily builds the Profile message descriptor from schemaFile.
var profileDescriptor = sync.OnceValues(func() (protoreflect.MessageDescriptor, error) {
	fd, err := protodesc.NewFile(schemaFile(), nil)
	if err != nil {
		return nil, err
	}
	return fd.Messages().ByName("Profile"), nil
})

func qualified(name string) *string {
	return proto.String("." + schemaPackage + "." + name)
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = qualified(typeName)
	return f
}

func oneofMember(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.OneofIndex = proto.Int32(0)
	return f
}

// schemaFile describes the descriptor wire format:
//
//	message Profile { string profile_name = 1; repeated Property properties = 2; }
//	message Property {
//	  message Type {
//	    enum PrimitiveType { UNKNOWN = 0; BOOLEAN = 1; ... GUID = 8; }
//	    message Reference { string name = 1; }
//	    message Collection { Type element = 1; }
//	    oneof type { PrimitiveType primitive = 1; Reference reference = 2; Collection collection = 3; }
//	  }
//	  string name = 1;
//	  Type type = 2;
//	}
func schemaFile() *descriptorpb.FileDescriptorProto {
	primitiveValues := make([]*descriptorpb.EnumValueDescriptorProto, 0, len(primitiveKindNames))
	for k := Unknown; k <= Guid; k++ {
		primitiveValues = append(primitiveValues, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(k.String()),
			Number: proto.Int32(int32(k)),
		})
	}

	primitive := scalarField("primitive", 1, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	primitive.TypeName = qualified("Property.Type.PrimitiveType")

	properties := messageField("properties", 2, "Property")
	properties.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	typeMsg := &descriptorpb.DescriptorProto{
		Name: proto.String("Type"),
		NestedType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("Reference"),
				Field: []*descriptorpb.FieldDescriptorProto{scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING)},
			},
			{
				Name:  proto.String("Collection"),
				Field: []*descriptorpb.FieldDescriptorProto{messageField("element", 1, "Property.Type")},
			},
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{Name: proto.String("PrimitiveType"), Value: primitiveValues},
		},
		Field: []*descriptorpb.FieldDescriptorProto{
			oneofMember(primitive),
			oneofMember(messageField("reference", 2, "Property.Type.Reference")),
			oneofMember(messageField("collection", 3, "Property.Type.Collection")),
		},
		OneofDecl: []*descriptorpb.OneofDescriptorProto{{Name: proto.String("type")}},
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(schemaFileName),
		Package: proto.String(schemaPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Profile"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("profile_name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					properties,
				},
			},
			{
				Name:       proto.String("Property"),
				NestedType: []*descriptorpb.DescriptorProto{typeMsg},
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					messageField("type", 2, "Property.Type"),
				},
			},
		},
	}
}
