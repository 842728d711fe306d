package users

import (
	"time"
)

// UserStatus represents the lifecycle state of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid checks if the user status is valid
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// MinimumAge is the youngest age a user can be registered with
const MinimumAge = 18

// User represents a registered user
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	IsAdmin   bool       `json:"is_admin"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Clone returns a copy of the user that shares no state with the original
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     *int   `json:"age,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// Validate checks required fields first, then the minimum age
func (r *CreateUserRequest) Validate() error {
	switch {
	case r.Name == "":
		return newRequiredFieldsError("name", r.Name)
	case r.Email == "":
		return newRequiredFieldsError("email", r.Email)
	case r.Age == nil:
		return newRequiredFieldsError("age", nil)
	}

	if *r.Age < MinimumAge {
		return &ValidationError{
			Field:   "age",
			Value:   *r.Age,
			Message: msgUnderage,
		}
	}
	return nil
}

// ToUser converts the request to a new active User with a fresh ID
func (r *CreateUserRequest) ToUser() *User {
	now := time.Now()
	return &User{
		ID:        newUserID(),
		Name:      r.Name,
		Email:     r.Email,
		Age:       *r.Age,
		IsAdmin:   r.IsAdmin,
		Status:    UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCreateUserRequest builds a request from positional values, admin defaults to false
func NewCreateUserRequest(name, email string, age int, isAdmin ...bool) *CreateUserRequest {
	req := &CreateUserRequest{
		Name:  name,
		Email: email,
		Age:   &age,
	}
	if len(isAdmin) > 0 {
		req.IsAdmin = isAdmin[0]
	}
	return req
}
