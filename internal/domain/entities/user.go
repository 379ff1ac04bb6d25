package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeHunter UserType = "hunter"
	UserTypeAgent  UserType = "agent"
)

func (t UserType) IsValid() bool {
	return t == UserTypeHunter || t == UserTypeAgent
}

type User struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string
	UserType     UserType
	Phone        string
	AgentLicense string
	PasswordHash string `json:"-"`
}

func NewUser(name, email string, userType UserType, phone, agentLicense string) *User {
	now := time.Now().UTC()
	return &User{
		Id:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         name,
		Email:        email,
		UserType:     userType,
		Phone:        phone,
		AgentLicense: agentLicense,
	}
}

func (u *User) IsAgent() bool {
	return u.UserType == UserTypeAgent
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if !u.UserType.IsValid() {
		return errors.New("user_type must be hunter or agent")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}
	if u.IsAgent() && (u.Phone == "" || u.AgentLicense == "") {
		return errors.New("agents must have a phone number and agent license")
	}
	if !u.IsAgent() && (u.Phone != "" || u.AgentLicense != "") {
		return errors.New("hunters must not carry agent fields")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// UpdateProfile replaces the mutable profile fields. Nil arguments leave
// the field untouched.
func (u *User) UpdateProfile(name, phone, agentLicense *string) {
	if name != nil {
		u.Name = *name
	}
	if phone != nil {
		u.Phone = *phone
	}
	if agentLicense != nil {
		u.AgentLicense = *agentLicense
	}
	u.UpdatedAt = time.Now().UTC()
}
