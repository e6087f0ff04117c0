package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin or teacher account stored in the users collection
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" example:"Admin User"`
	Email     string             `json:"email" bson:"email" example:"admin@organicclasses.com"`
	Password  string             `json:"-" bson:"password"`
	Role      RoleType           `json:"role" bson:"role" example:"admin"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	LastLogin *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
