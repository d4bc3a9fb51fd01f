package auth

import (
	"net/http"
	"time"

	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userDto "hotel/internal/domains/user/model/dto"
	userService "hotel/internal/domains/user/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	users   userService.User
	otel    otel.Otel
}

func New(service service.Auth, users userService.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		users:   users,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router, mw middleware.AuthRole) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/verify-token", handler.VerifyToken)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/profile", handler.Profile)
			r.Post("/logout", handler.Logout)
			r.Put("/password", handler.ChangePassword)
			r.With(mw.RequireRole(constant.RoleAdmin)).Post("/register", handler.Register)
		})
	})
}

// Login exchanges a username and password for a signed token.
// @Summary Log in
// @Description Exchange a username and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.LoginResponse] "Token issued"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Register creates an account. Admin only.
// @Summary Register an account
// @Description Create a login account. Admin only.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body userDto.CreateUserRequest true "Account details"
// @Success 201 {object} response.Data[userDto.UserResponse] "Account created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/register [post]
// @Security BearerAuth
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := userDto.CreateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.users.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Verify a token
// @Description Report whether the bearer token is valid and who it belongs to.
// @Tags Auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} response.Data[dto.VerifyTokenResponse] "Token details"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/verify-token [post]
func (handler *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyToken")
	defer scope.End()

	token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.Unauthorized(err.Error()))

		return
	}

	res, err := handler.service.VerifyToken(ctx, token)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// @Summary Get own profile
// @Description Retrieve the account of the authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[userDto.UserResponse] "Profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/profile [get]
// @Security BearerAuth
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profile")
	defer scope.End()

	res, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes the token the request was made with.
// @Summary Log out
// @Description Revoke the bearer token the request was made with.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	expiresAt, _ := ctx.Value(constant.ContextKeyTokenExpiry).(time.Time)

	if err := handler.service.Logout(ctx, tokenID, expiresAt); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged out successfully")

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// @Summary Change password
// @Description Replace the password of the authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Message "Password updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password updated successfully")
}
