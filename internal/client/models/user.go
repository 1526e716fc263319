package models

import "encoding/json"

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role,omitempty"`
}

// UnmarshalJSON accepts both "id" and "_id"; auth responses use the former,
// profile responses the latter.
func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	var v struct {
		alias
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = User(v.alias)
	if u.ID == "" {
		u.ID = v.MongoID
	}
	return nil
}

// Session is the signed-in identity the client keeps between runs.
type Session struct {
	Token string
	User  User
}

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Username     string `json:"username" validate:"required,min=3,max=30"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"fullName" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required,phone"`
}

// AuthResponse is returned by /auth/login and /auth/register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// ProfileUpdate is the body of PATCH /users/profile. Empty fields are not sent.
type ProfileUpdate struct {
	FullName     string `json:"fullName,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	MobileNumber string `json:"mobileNumber,omitempty" validate:"omitempty,phone"`
}
