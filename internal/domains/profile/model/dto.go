package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"coderr-backend/internal/shared"
)

// RegistrationRequest creates a user plus its empty profile.
type RegistrationRequest struct {
	Username         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
	Type             string `json:"type" binding:"required"`
}

func (r RegistrationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 150),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.RepeatedPassword,
			validation.Required.Error("repeated password is required"),
			validation.By(func(interface{}) error {
				if r.Password != r.RepeatedPassword {
					return validation.NewError("validation_passwords_mismatch", "passwords do not match")
				}
				return nil
			}),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(
				shared.RoleCustomer.String(),
				shared.RoleBusiness.String(),
			).Error("type must be customer or business"),
		),
	)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is returned by both registration and login.
type AuthResponse struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

// UpdateProfileRequest partially updates a profile. Nil fields keep their
// prior value. User type is not updatable.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	File         *string `json:"file,omitempty"`
	Location     *string `json:"location,omitempty"`
	Tel          *string `json:"tel,omitempty"`
	Description  *string `json:"description,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
	Email        *string `json:"email,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email.Error("invalid email format")),
		),
		validation.Field(&r.FirstName,
			validation.When(r.FirstName != nil, validation.Length(0, 100)),
		),
		validation.Field(&r.LastName,
			validation.When(r.LastName != nil, validation.Length(0, 100)),
		),
	)
}

// ProfileResponse is the full profile view returned by GET/PATCH /profile/:id.
type ProfileResponse struct {
	User         uuid.UUID   `json:"user"`
	Username     string      `json:"username"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	File         *string     `json:"file"`
	Location     string      `json:"location"`
	Tel          string      `json:"tel"`
	Description  string      `json:"description"`
	WorkingHours string      `json:"working_hours"`
	Type         shared.Role `json:"type"`
	Email        string      `json:"email"`
	CreatedAt    time.Time   `json:"created_at"`
}

// BusinessProfileResponse is one row of the business profile list.
type BusinessProfileResponse struct {
	User         uuid.UUID   `json:"user"`
	Username     string      `json:"username"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	File         *string     `json:"file"`
	Location     string      `json:"location"`
	Tel          string      `json:"tel"`
	Description  string      `json:"description"`
	WorkingHours string      `json:"working_hours"`
	Type         shared.Role `json:"type"`
}

// CustomerProfileResponse is one row of the customer profile list. Customers
// expose only the base fields.
type CustomerProfileResponse struct {
	User      uuid.UUID   `json:"user"`
	Username  string      `json:"username"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	File      *string     `json:"file"`
	Type      shared.Role `json:"type"`
}

func (p *ProfileWithUser) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		User:         p.UserID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         p.Type,
		Email:        p.Email,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *ProfileWithUser) ToBusinessResponse() BusinessProfileResponse {
	return BusinessProfileResponse{
		User:         p.UserID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         p.Type,
	}
}

func (p *ProfileWithUser) ToCustomerResponse() CustomerProfileResponse {
	return CustomerProfileResponse{
		User:      p.UserID,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		File:      p.File,
		Type:      p.Type,
	}
}
