package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aarya-club/backend/internal/models"
	"github.com/aarya-club/backend/pkg/response"
	"github.com/aarya-club/backend/pkg/utils"
)

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the body returned on successful registration.
type RegisterResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// LoginResponse is the body returned on successful login.
type LoginResponse struct {
	Token   string             `json:"token"`
	Message string             `json:"message"`
	User    models.AdminPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	store  Store
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(store Store, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{store: store, jwt: jwt, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.BindingMessage(err))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.ExistsByUsername(ctx, req.Username)
	if err != nil {
		h.logger.Error("check username", zap.Error(err))
		response.Internal(c, "failed to register admin")
		return
	}
	if exists {
		response.BadRequest(c, "Username already exists")
		return
	}

	exists, err = h.store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		h.logger.Error("check email", zap.Error(err))
		response.Internal(c, "failed to register admin")
		return
	}
	if exists {
		response.BadRequest(c, "Email already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		response.Internal(c, "failed to register admin")
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
	}
	if err := h.store.Create(ctx, admin); err != nil {
		// A concurrent registration can slip past the pre-checks; the
		// uniqueness constraints catch it and it reports like the pre-checks.
		if errors.Is(err, ErrDuplicate) {
			response.BadRequest(c, "Username already exists")
			return
		}
		h.logger.Error("create admin", zap.Error(err))
		response.Internal(c, "failed to register admin")
		return
	}

	token, err := h.jwt.Generate(admin.Username, models.RoleAdmin)
	if err != nil {
		h.logger.Error("generate token", zap.Error(err))
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, RegisterResponse{Token: token, Message: "Admin registered successfully"})
}

// Login handles POST /api/auth/login. Every failure mode returns the same
// generic message so the response never reveals which factor was wrong.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid username or password")
		return
	}

	admin, err := h.store.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.BadRequest(c, "Invalid username or password")
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		response.BadRequest(c, "Invalid username or password")
		return
	}

	token, err := h.jwt.Generate(admin.Username, models.RoleAdmin)
	if err != nil {
		h.logger.Error("generate token", zap.Error(err))
		response.BadRequest(c, "Invalid username or password")
		return
	}

	response.OK(c, LoginResponse{
		Token:   token,
		Message: "Login successful",
		User:    admin.ToPublic(),
	})
}
