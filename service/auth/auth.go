package auth

import (
	"context"
	"errors"
	"fmt"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/request"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func UserRegister(ctx context.Context, req request.UserRegisterRequest) (*model.Profile, error) {
	existing, err := dao.GetProfileByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %v", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	profile := &model.Profile{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         model.RoleMember,
	}
	if err := dao.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %v", err)
	}
	return profile, nil
}

func UserLogin(ctx context.Context, req request.UserLoginRequest) (*model.Profile, error) {
	profile, err := dao.GetProfileByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %v", err)
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return profile, nil
}
