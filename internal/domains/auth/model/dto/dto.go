package dto

import (
	"time"

	"hotel/infras/jwt"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login"`
}

type LoginResponse struct {
	Token     string               `json:"token"`
	ExpiresAt string               `json:"expires_at"`
	User      userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromToken(token jwt.Token, user userDto.UserResponse) {
	l.Token = token.Token
	l.ExpiresAt = timezone.Format(token.ExpiresAt, constant.DateTimeFormat)
	l.User = user
}

type VerifyTokenResponse struct {
	Valid     bool   `json:"valid"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

func (v *VerifyTokenResponse) FromClaims(claims *jwt.Claims) {
	v.Valid = true
	v.UserID = claims.UserID
	v.Username = claims.Username
	v.Role = claims.Role

	if claims.ExpiresAt != nil {
		v.ExpiresAt = timezone.Format(claims.ExpiresAt.Time, constant.DateTimeFormat)
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password"`
}
