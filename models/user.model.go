package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles
type Role string

// Title is the closed set of account titles
type Title string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"

	TitleVendor Title = "vendor"
)

// Valid reports whether r is one of the known roles. The empty string is
// allowed because most registrations carry no role at all.
func (r Role) Valid() bool {
	switch r {
	case "", RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Valid reports whether t is a known title
func (t Title) Valid() bool {
	switch t {
	case "", TitleVendor:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
	Title    Title              `bson:"title,omitempty" json:"title,omitempty"`
}
