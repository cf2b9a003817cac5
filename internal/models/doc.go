// Package models defines the records the chat app keeps in its document store.
//
// # Records
//
//   - UserProfile: identity and demographic fields for a person
//   - GroupDescriptor: name and description of a chat group
//
// The records are independent of each other. Uniqueness of a UserProfile ID
// and any required-field checks belong to whoever writes to the store.
//
// # Document mapping
//
// Every field carries `firestore` and `json` tags whose values are the exact,
// case-sensitive document keys. A store client instantiates the zero value and
// then populates fields by key, so the zero value of each record is always a
// valid, empty record:
//
//	UserProfile     -> { id, fullName, email, age, city }
//	GroupDescriptor -> { groupName, description }
package models
