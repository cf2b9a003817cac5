package models

import "fmt"

// GroupDescriptor describes a group chat.
// The zero value is an empty descriptor.
type GroupDescriptor struct {
	// GroupName is the display name of the group (e.g., "Engineers").
	GroupName string `firestore:"groupName" json:"groupName"`

	// Description is free text shown under the group name.
	Description string `firestore:"description" json:"description"`
}

// NewGroupDescriptor returns a fully populated descriptor.
func NewGroupDescriptor(groupName, description string) *GroupDescriptor {
	return &GroupDescriptor{GroupName: groupName, Description: description}
}

// GetGroupName returns the group name, or "" for a nil descriptor.
func (g *GroupDescriptor) GetGroupName() string {
	if g == nil {
		return ""
	}
	return g.GroupName
}

// GetDescription returns the description, or "" for a nil descriptor.
func (g *GroupDescriptor) GetDescription() string {
	if g == nil {
		return ""
	}
	return g.Description
}

// SetGroupName replaces the group name.
func (g *GroupDescriptor) SetGroupName(groupName string) { g.GroupName = groupName }

// SetDescription replaces the description.
func (g *GroupDescriptor) SetDescription(description string) { g.Description = description }

// String lists groupName then description.
func (g *GroupDescriptor) String() string {
	return fmt.Sprintf("GroupChat{groupName='%s', description='%s'}",
		g.GetGroupName(), g.GetDescription())
}
