package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	errUsernameExists = "username already exists"
	errUserNotFound   = "user not found"
	errNoValidFields  = "no valid fields to update"
	errInvalidRole    = "role must be one of Employee, Manager, Admin"
	errShortUsername  = "username must be at least 3 characters without surrounding spaces"

	minUsernameLength = 3
)

var roles = []string{constant.RoleEmployee, constant.RoleManager, constant.RoleAdmin}

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	List(ctx context.Context, role string) ([]dto.UserResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func byUsername(username string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldUsername,
		Operator: gDto.FilterOperatorEq,
		Value:    username,
		Table:    model.TableName,
	})
}

func activeOnly(filters ...gDto.Filter) gDto.FilterGroup {
	return gDto.And(append([]gDto.Filter{{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	}}, filters...)...)
}

func orderedByUsername() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldUsername, SortDir: gDto.SortDirAsc}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Username = strings.TrimSpace(req.Username)

	if req.Role != "" && !slices.Contains(roles, req.Role) {
		return res, failure.BadRequestFromString(errInvalidRole)
	}

	if utf8.RuneCountInString(req.Username) < minUsernameLength {
		return res, failure.BadRequestFromString(errShortUsername)
	}

	exists, err := s.repo.Exist(ctx, byUsername(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Duplicate(errUsernameExists)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(shared.Actor(ctx), hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Duplicate(errUsernameExists)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	scope.SetAttribute("user.id", user.ID)
	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")

	res.FromModel(user)

	return res, nil
}

// Get returns any account, active or not. Employees may only read their own.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if identity, ok := shared.GetIdentity(ctx); ok && !identity.CanAccessEmployee(id) {
		return res, failure.ResourceRestrictedError
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound(errUserNotFound)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, role string) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filters := []gDto.Filter{}

	if role != "" {
		if !slices.Contains(roles, role) {
			return nil, failure.BadRequestFromString(errInvalidRole)
		}

		filters = append(filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	users, err := s.repo.GetAll(ctx, orderedByUsername(), activeOnly(filters...))
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return dto.FromModels(users), nil
}

func (s *serviceImpl) ListByDepartment(ctx context.Context, department string) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDepartment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.repo.GetAll(ctx, orderedByUsername(), activeOnly(gDto.Filter{
		Field:    model.FieldDepartment,
		Operator: gDto.FilterOperatorEq,
		Value:    department,
		Table:    model.TableName,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to list users by department")

		return nil, fmt.Errorf("failed to list users by department: %w", err)
	}

	return dto.FromModels(users), nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(shared.ChangedFields(req)) == 0 {
		return res, failure.BadRequestFromString(errNoValidFields)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(errUserNotFound)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload user")

		return res, fmt.Errorf("failed to reload user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

// Deactivate soft deletes the account. Deactivating an inactive account succeeds.
func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldIsActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound(errUserNotFound)
	}

	if !user.IsActive {
		return nil
	}

	inactive := false
	fields := shared.TransformFields(dto.UpdateUserRequest{IsActive: &inactive}, shared.Actor(ctx))

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate user")

		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	log.Info().Str("user_id", id).Msg("user deactivated")

	return nil
}
