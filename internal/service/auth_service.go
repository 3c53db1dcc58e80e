package service

import (
	"context"
	"errors"
	"time"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"

	"ai-bankassist-be/pkg/events"
	pktNats "ai-bankassist-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	authCfg        config.AuthConfig
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		authCfg:        authCfg,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if existing != nil {
		return nil, errors.New("username already registered")
	}
	existing, _ = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		HashedPassword: string(hash),
		IsVerified:     false,
		Status:         entity.UserStatusActive,
		RiskLevel:      entity.RiskLevelModerate,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.NewBaseEvent("USER_REGISTERED", map[string]interface{}{
			"user_id":  user.Id,
			"username": user.Username,
		}))
	}

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status != entity.UserStatusActive {
		return nil, errors.New("user account is not active")
	}

	ttl := time.Duration(s.authCfg.TokenTTLHours) * time.Hour
	claims := jwt.MapClaims{
		"user_id":  user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authCfg.JwtSecret))
	if err != nil {
		return nil, err
	}

	_ = uow.UserRepository().UpdateLastLogin(ctx, user.Id)

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		RiskLevel: string(user.RiskLevel),
		Status:    string(user.Status),
	}
}
