package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/pkg/jwt"
	"gorm.io/gorm"
)

// AuthService handles login and token lifecycle
type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenResponse, error)
	Logout(ctx context.Context, memberIdx int) error
}

type authService struct {
	memberRepo repository.MemberRepository
	tokens     repository.TokenStore
	jwtManager *jwt.Manager
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(memberRepo repository.MemberRepository, tokens repository.TokenStore,
	jwtManager *jwt.Manager, refreshTTL time.Duration) AuthService {
	return &authService{
		memberRepo: memberRepo,
		tokens:     tokens,
		jwtManager: jwtManager,
		refreshTTL: refreshTTL,
	}
}

// Login checks credentials and issues an access/refresh token pair.
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error) {
	member, err := s.memberRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	hash := sha256.Sum256([]byte(req.Password))
	if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(hash[:])), []byte(member.Password)) != 1 {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, member)
}

// Refresh rotates the refresh token. 저장된 최신 토큰만 인정하고, 새 토큰
// 발급과 동시에 이전 토큰은 무효가 된다.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}

	valid, err := s.tokens.ValidRefreshToken(ctx, claims.UserIdx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	if !valid {
		return nil, common.ErrInvalidToken
	}

	member, err := s.memberRepo.FindByIdx(claims.UserIdx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return s.issueTokens(ctx, member)
}

// Logout revokes the member's refresh token.
func (s *authService) Logout(ctx context.Context, memberIdx int) error {
	if err := s.tokens.DeleteRefreshToken(ctx, memberIdx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	return nil
}

func (s *authService) issueTokens(ctx context.Context, member *domain.Member) (*domain.TokenResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(member.MemberIdx, member.Nickname)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(member.MemberIdx, member.Nickname)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	if err := s.tokens.SaveRefreshToken(ctx, member.MemberIdx, refreshToken, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		MemberIdx:    member.MemberIdx,
		Nickname:     member.Nickname,
	}, nil
}
