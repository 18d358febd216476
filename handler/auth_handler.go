package handler

import (
	"time"

	"taskpulse/dto"
	"taskpulse/logger"
	"taskpulse/model"
	"taskpulse/services"
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users     *usecase.UserService
	tokens    *services.TokenService
	blacklist *services.RedisTokenBlacklist
}

// NewAuthHandler wires the account endpoints. blacklist may be nil, in
// which case logout cannot revoke tokens before they expire.
func NewAuthHandler(users *usecase.UserService, tokens *services.TokenService, blacklist *services.RedisTokenBlacklist) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, blacklist: blacklist}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "registration")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToUserProfileResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req, c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessMessage(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokens.TTL().Seconds()),
		User:        dto.ToUserProfileResponse(user),
	})
}

// ForgotPassword resets the password of the named account.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessMessage(c, "Password updated successfully", nil)
}

// Logout revokes the caller's access token until it would have expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expires := time.Now().Add(h.tokens.TTL())
	if v, ok := c.Get("token_expires"); ok {
		if t, ok := v.(time.Time); ok {
			expires = t
		}
	}

	if h.blacklist == nil {
		logger.Warn("logout without token blacklist; token stays valid until expiry", "user_id", c.GetString("user_id"))
	} else if err := h.blacklist.Blacklist(c.Request.Context(), tokenID, expires); err != nil {
		logger.Error("failed to blacklist token", "error", err)
		utils.TrackError("auth", "logout_failed")
		utils.ServiceUnavailable(c, "Failed to logout")
		return
	}

	utils.TrackAuthAttempt("success", "logout")
	utils.SuccessMessage(c, "Successfully logged out", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToUserProfileResponse(user))
}
