package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userDto "hotel/internal/domains/user/model/dto"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	errInvalidCredentials = "invalid username or password"
	errInactiveAccount    = "account is deactivated"
	errInvalidToken       = "invalid or expired token"
	errRevokedToken       = "token has been revoked"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Profile(ctx context.Context) (userDto.UserResponse, error)
	VerifyToken(ctx context.Context, token string) (dto.VerifyTokenResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	otel       otel.Otel
	jwtService jwt.JWT
	cache      cache.RedisCache
}

func New(userRepo userRepo.User, otel otel.Otel, jwt jwt.JWT, cache cache.RedisCache) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		otel:       otel,
		jwtService: jwt,
		cache:      cache,
	}
}

func revokedKey(tokenID string) string {
	return shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Filter{
		Field:    userModel.FieldUsername,
		Operator: gDto.FilterOperatorEq,
		Value:    req.Username,
		Table:    userModel.TableName,
	})

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(errInvalidCredentials)
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials)
	}

	if !user.IsActive {
		log.Warn().Str("user_id", user.ID).Msg("login attempt on deactivated account")

		return res, failure.Unauthorized(errInactiveAccount)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	now := timezone.Now()
	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, user.ID)

	if err := s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}

	var userResponse userDto.UserResponse
	userResponse.FromModel(user)

	res.FromToken(token, userResponse)

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	identity, ok := shared.GetIdentity(ctx)
	if !ok {
		return res, failure.Unauthorized(errInvalidToken)
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(identity.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) VerifyToken(ctx context.Context, token string) (res dto.VerifyTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return res, failure.Unauthorized(errInvalidToken)
	}

	revoked, err := s.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check token revocation")
	}

	if revoked {
		return res, failure.Unauthorized(errRevokedToken)
	}

	res.FromClaims(claims)

	return res, nil
}

// Logout revokes tokenID until the token would have expired anyway.
func (s *serviceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if tokenID == "" {
		return failure.Unauthorized(errInvalidToken)
	}

	ttl := int(time.Until(expiresAt).Seconds())
	if ttl <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, revokedKey(tokenID), tokenID, ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	log.Info().Str("user_id", shared.Actor(ctx)).Msg("user logged out")

	return nil
}

func (s *serviceImpl) IsRevoked(ctx context.Context, tokenID string) (revoked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRevoked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	revoked, err = s.cache.Exists(ctx, revokedKey(tokenID))
	if err != nil && !errors.Is(err, cache.Nil) {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return revoked, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	identity, ok := shared.GetIdentity(ctx)
	if !ok {
		return failure.Unauthorized(errInvalidToken)
	}

	filter := shared.FilterByID(identity.UserID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, identity.UserID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
