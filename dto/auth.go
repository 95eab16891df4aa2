package dto

import "time"

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,strong_password"`
	ReferralCode string `json:"referral_code" validate:"omitempty,min=6,max=12"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RegisterResponse struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginResponse struct {
	TokenPair
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
