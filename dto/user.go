package dto

import (
	"time"

	"taskpulse/model"
)

type UserProfileResponse struct {
	UserID          string     `json:"user_id"`
	Username        string     `json:"username"`
	Fullname        string     `json:"fullname,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	LastLoginDevice string     `json:"last_login_device,omitempty"`
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int64               `json:"expires_in"` // seconds
	User        UserProfileResponse `json:"user"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	response := UserProfileResponse{
		UserID:          user.UserID,
		Username:        user.Username,
		Fullname:        user.Fullname,
		Gender:          user.Gender,
		CreatedAt:       user.CreatedAt,
		LastLoginDevice: user.LastLoginDevice,
	}
	if !user.LastLoginAt.IsZero() {
		at := user.LastLoginAt
		response.LastLoginAt = &at
	}
	return response
}
