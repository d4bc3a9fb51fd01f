package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username   string `json:"username"   validate:"required,min=3,max=80"`
	Password   string `json:"password"   validate:"required,min=6"`
	FullName   string `json:"full_name"  validate:"required,max=150"`
	Email      string `json:"email"      validate:"omitempty,email,max=120"`
	Role       string `json:"role"       validate:"omitempty,oneof=Employee Manager Admin"`
	Department string `json:"department" validate:"omitempty,max=80"`
	Phone      string `json:"phone"      validate:"omitempty,max=30"`
}

func (r *CreateUserRequest) ToModel(actor string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleEmployee
	}

	return model.User{
		ID:         uuid.NewString(),
		Username:   r.Username,
		Password:   hashedPassword,
		Email:      r.Email,
		FullName:   r.FullName,
		Role:       role,
		Department: r.Department,
		Phone:      r.Phone,
		IsActive:   true,
		Metadata:   gModel.NewMetadata(actor, timezone.Now()),
	}
}

// UpdateUserRequest lists the only columns a partial update may touch.
type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty"      db:"email"      validate:"omitempty,email,max=120"`
	FullName   *string `json:"full_name,omitempty"  db:"full_name"  validate:"omitempty,min=1,max=150"`
	Department *string `json:"department,omitempty" db:"department" validate:"omitempty,max=80"`
	Phone      *string `json:"phone,omitempty"      db:"phone"      validate:"omitempty,max=30"`
	IsActive   *bool   `json:"is_active,omitempty"  db:"is_active"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"is_active"`
	LastLogin  string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Department = model.Department
	r.Phone = model.Phone
	r.IsActive = model.IsActive

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateTimeFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
