package source

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/typetrial/internal/descriptor"
)

// FileSet is a descriptor source backed by parsed .proto files. Messages
// become structured records, service methods become signatures, and
// message-typed fields become remote references resolved against the
// same set.
type FileSet struct {
	messages map[string]descriptor.Descriptor
	sigs     map[string]Signature
}

// ParseProtoFiles parses proto files and derives descriptors for every
// message and service method in them.
func ParseProtoFiles(importPaths []string, filenames ...string) (*FileSet, error) {
	parser := protoparse.Parser{ImportPaths: importPaths}
	if len(importPaths) == 0 {
		parser.ImportPaths = []string{"."}
	}

	fds, err := parser.ParseFiles(filenames...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proto: %w", err)
	}

	fs := &FileSet{
		messages: make(map[string]descriptor.Descriptor),
		sigs:     make(map[string]Signature),
	}
	for _, fd := range fds {
		fs.addFile(fd)
	}
	return fs, nil
}

func (fs *FileSet) addFile(fd *desc.FileDescriptor) {
	for _, md := range fd.GetMessageTypes() {
		fs.addMessage(md)
	}
	for _, sd := range fd.GetServices() {
		for _, mtd := range sd.GetMethods() {
			sig := Signature{
				Params: []descriptor.Descriptor{
					descriptor.RemoteReference{Owner: mtd.GetInputType().GetFullyQualifiedName()},
				},
				Return: descriptor.RemoteReference{Owner: mtd.GetOutputType().GetFullyQualifiedName()},
			}
			fs.sigs[sd.GetFullyQualifiedName()+"/"+mtd.GetName()] = sig
		}
	}
}

func (fs *FileSet) addMessage(md *desc.MessageDescriptor) {
	fields := make([]descriptor.Field, 0, len(md.GetFields()))

	// Oneof members fold into one optional union-valued field per oneof.
	oneofMember := make(map[string]bool)
	for _, od := range md.GetOneOfs() {
		alts := make([]descriptor.Descriptor, 0, len(od.GetChoices()))
		for _, fld := range od.GetChoices() {
			oneofMember[fld.GetName()] = true
			alts = append(alts, fieldDescriptor(fld))
		}
		fields = append(fields, descriptor.Field{
			Key:      descriptor.Literal{Value: od.GetName()},
			Value:    descriptor.Union{Alternatives: alts},
			Required: false,
		})
	}

	for _, fld := range md.GetFields() {
		if oneofMember[fld.GetName()] {
			continue
		}
		d := fieldDescriptor(fld)
		if fld.IsRepeated() {
			d = descriptor.Sequence{Elem: d}
		}
		fields = append(fields, descriptor.Field{
			Key:      descriptor.Literal{Value: fld.GetName()},
			Value:    d,
			Required: true,
		})
	}

	fs.messages[md.GetFullyQualifiedName()] = descriptor.StructuredRecord{
		TypeName: md.GetFullyQualifiedName(),
		Fields:   fields,
	}

	for _, nested := range md.GetNestedMessageTypes() {
		fs.addMessage(nested)
	}
}

// fieldDescriptor maps a proto field type to an engine descriptor.
func fieldDescriptor(fld *desc.FieldDescriptor) descriptor.Descriptor {
	switch fld.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_INT32,
		descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return descriptor.Primitive{Kind: descriptor.KindInteger}
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return descriptor.NonNegInteger()
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return descriptor.Primitive{Kind: descriptor.KindFloat}
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return descriptor.Primitive{Kind: descriptor.KindBoolean}
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return descriptor.Primitive{Kind: descriptor.KindString}
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return descriptor.Primitive{Kind: descriptor.KindBinary}
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		values := fld.GetEnumType().GetValues()
		alts := make([]descriptor.Descriptor, len(values))
		for i, v := range values {
			alts[i] = descriptor.Literal{Value: v.GetName()}
		}
		return descriptor.Union{Alternatives: alts}
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE,
		descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return descriptor.RemoteReference{Owner: fld.GetMessageType().GetFullyQualifiedName()}
	}
	return descriptor.Primitive{Kind: descriptor.KindAny}
}

// Signature implements Source for "pkg.Service/Method" targets.
func (fs *FileSet) Signature(target string) (Signature, error) {
	sig, ok := fs.sigs[target]
	if !ok {
		return Signature{}, &NotFoundError{Target: target}
	}
	return sig, nil
}

// Resolve implements descriptor.Resolver over the parsed messages.
func (fs *FileSet) Resolve(owner string) (descriptor.Descriptor, bool) {
	d, ok := fs.messages[owner]
	return d, ok
}

// Message returns the record descriptor of a fully-qualified message.
func (fs *FileSet) Message(name string) (descriptor.Descriptor, bool) {
	d, ok := fs.messages[name]
	return d, ok
}

// MessageNames lists the fully-qualified names of all parsed messages.
func (fs *FileSet) MessageNames() []string {
	names := make([]string, 0, len(fs.messages))
	for name := range fs.messages {
		names = append(names, name)
	}
	return names
}

// SignatureTargets lists all "pkg.Service/Method" targets.
func (fs *FileSet) SignatureTargets() []string {
	targets := make([]string, 0, len(fs.sigs))
	for target := range fs.sigs {
		targets = append(targets, target)
	}
	return targets
}
