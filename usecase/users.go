package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskpulse/logger"
	"taskpulse/model"
	"taskpulse/services"
	"taskpulse/utils"

	"github.com/google/uuid"
)

type UserService struct {
	repo   UserStore
	tokens *services.TokenService
	now    func() time.Time
}

func NewUserService(repo UserStore, tokens *services.TokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens, now: time.Now}
}

// Register creates an account. Usernames are unique.
func (svc *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, invalid("username is required")
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, invalid("password must be at least 6 characters and contain a number and a special character")
	}

	existing, err := svc.repo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, storeErr("find user", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", ErrConflict)
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Username:  username,
		Password:  hashed,
		Fullname:  strings.TrimSpace(req.Fullname),
		Gender:    strings.TrimSpace(req.Gender),
		CreatedAt: svc.now().UTC(),
	}
	if err := svc.repo.AddUser(ctx, user); err != nil {
		return nil, storeErr("add user", err)
	}

	utils.TrackRegistration()
	logger.Info("user registered", "user_id", user.UserID)
	return user, nil
}

// Login checks credentials and issues an access token. userAgent is
// recorded as the user's last login device.
func (svc *UserService) Login(ctx context.Context, req model.LoginRequest, userAgent string) (string, *model.User, error) {
	user, err := svc.repo.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return "", nil, storeErr("find user", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		return "", nil, ErrUnauthorized
	}

	ok, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "invalid_password")
		return "", nil, ErrUnauthorized
	}

	token, err := svc.tokens.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return "", nil, err
	}

	now := svc.now().UTC()
	device := utils.DescribeUserAgent(userAgent)
	if err := svc.repo.RecordLogin(ctx, user.UserID, device, now); err != nil {
		// the token is already valid; a missed audit field is not fatal
		logger.Warn("failed to record login", "user_id", user.UserID, "error", err)
	} else {
		user.LastLoginAt = now
		user.LastLoginDevice = device
	}

	utils.TrackAuthAttempt("success", "login")
	return token, user, nil
}

// ResetPassword replaces the password of the named user. Reusing the
// current password is rejected.
func (svc *UserService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	if !utils.ValidatePassword(req.Password) {
		return invalid("password must be at least 6 characters and contain a number and a special character")
	}

	user, err := svc.repo.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return storeErr("find user", err)
	}
	if user == nil {
		return ErrNotFound
	}

	if same, _ := services.VerifyPassword(user.Password, req.Password); same {
		return fmt.Errorf("%w: new password must differ from the current one", ErrConflict)
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return storeErr("update password", svc.repo.UpdateUserPassword(ctx, user.UserID, hashed))
}

func (svc *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.repo.FindUser(ctx, userID)
	if err != nil {
		return nil, storeErr("find user", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
