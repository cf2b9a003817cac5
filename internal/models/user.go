package models

import "fmt"

// UserProfile represents a person using the chat app.
//
// The zero value is an empty profile (ID and Age are 0, text fields empty) and
// is what a document store client populates when reading a profile back.
type UserProfile struct {
	// ID is the numeric identifier of the person.
	// Not unique by itself; the store owner enforces uniqueness.
	ID int32 `firestore:"id" json:"id"`

	// FullName is the person's display name.
	FullName string `firestore:"fullName" json:"fullName"`

	// Email is the contact address. Not validated.
	Email string `firestore:"email" json:"email"`

	// Age is accepted as-is, negative values included.
	Age int32 `firestore:"age" json:"age"`

	// City is where the person lives.
	City string `firestore:"city" json:"city"`
}

// NewUserProfile returns a fully populated profile.
func NewUserProfile(id int32, fullName, email string, age int32, city string) *UserProfile {
	return &UserProfile{
		ID:       id,
		FullName: fullName,
		Email:    email,
		Age:      age,
		City:     city,
	}
}

// GetID returns the profile ID, or 0 for a nil profile.
func (u *UserProfile) GetID() int32 {
	if u == nil {
		return 0
	}
	return u.ID
}

// GetFullName returns the full name, or "" for a nil profile.
func (u *UserProfile) GetFullName() string {
	if u == nil {
		return ""
	}
	return u.FullName
}

// GetEmail returns the email address, or "" for a nil profile.
func (u *UserProfile) GetEmail() string {
	if u == nil {
		return ""
	}
	return u.Email
}

// GetAge returns the age, or 0 for a nil profile.
func (u *UserProfile) GetAge() int32 {
	if u == nil {
		return 0
	}
	return u.Age
}

// GetCity returns the city, or "" for a nil profile.
func (u *UserProfile) GetCity() string {
	if u == nil {
		return ""
	}
	return u.City
}

// SetID replaces the profile ID.
func (u *UserProfile) SetID(id int32) { u.ID = id }

// SetFullName replaces the full name.
func (u *UserProfile) SetFullName(fullName string) { u.FullName = fullName }

// SetEmail replaces the email address without checking its format.
func (u *UserProfile) SetEmail(email string) { u.Email = email }

// SetAge replaces the age.
func (u *UserProfile) SetAge(age int32) { u.Age = age }

// SetCity replaces the city.
func (u *UserProfile) SetCity(city string) { u.City = city }

// String lists every field in the order id, fullname, email, age, city.
func (u *UserProfile) String() string {
	return fmt.Sprintf("User{id=%d, fullname='%s', email='%s', age=%d, city='%s'}",
		u.GetID(), u.GetFullName(), u.GetEmail(), u.GetAge(), u.GetCity())
}
