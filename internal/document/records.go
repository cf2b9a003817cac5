package document

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/chatrecords/internal/models"
)

// EncodeUser converts a profile into a document with all five keys present.
func EncodeUser(u *models.UserProfile) (*structpb.Struct, error) {
	doc, err := structpb.NewStruct(map[string]any{
		"id":       u.GetID(),
		"fullName": u.GetFullName(),
		"email":    u.GetEmail(),
		"age":      u.GetAge(),
		"city":     u.GetCity(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	return doc, nil
}

// DecodeUser builds a profile from a document, starting from the zero value.
// Keys missing from the document keep their zero value.
func DecodeUser(doc *structpb.Struct) (*models.UserProfile, error) {
	u := &models.UserProfile{}
	err := populate(doc, KindUser, map[string]fieldSetter{
		"id":       intField(u.SetID),
		"fullName": stringField(u.SetFullName),
		"email":    stringField(u.SetEmail),
		"age":      intField(u.SetAge),
		"city":     stringField(u.SetCity),
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// EncodeGroup converts a descriptor into a document.
func EncodeGroup(g *models.GroupDescriptor) (*structpb.Struct, error) {
	doc, err := structpb.NewStruct(map[string]any{
		"groupName":   g.GetGroupName(),
		"description": g.GetDescription(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode group: %w", err)
	}
	return doc, nil
}

// DecodeGroup builds a descriptor from a document, starting from the zero value.
func DecodeGroup(doc *structpb.Struct) (*models.GroupDescriptor, error) {
	g := &models.GroupDescriptor{}
	err := populate(doc, KindGroup, map[string]fieldSetter{
		"groupName":   stringField(g.SetGroupName),
		"description": stringField(g.SetDescription),
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Encode converts either record type into a document.
func Encode(record fmt.Stringer) (*structpb.Struct, error) {
	switch r := record.(type) {
	case *models.UserProfile:
		return EncodeUser(r)
	case *models.GroupDescriptor:
		return EncodeGroup(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, record)
	}
}

// Decode builds the record of the given kind from a document.
func Decode(kind Kind, doc *structpb.Struct) (fmt.Stringer, error) {
	switch kind {
	case KindUser:
		u, err := DecodeUser(doc)
		if err != nil {
			return nil, err
		}
		return u, nil
	case KindGroup:
		g, err := DecodeGroup(doc)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
