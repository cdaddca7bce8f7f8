package members

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aarya-club/backend/internal/models"
	"github.com/aarya-club/backend/pkg/response"
)

// Handler handles member HTTP endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a member handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List handles GET /api/members.
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list members", zap.Error(err))
		response.Internal(c, "failed to list members")
		return
	}
	if list == nil {
		list = []models.Member{}
	}
	response.OK(c, list)
}

// Get handles GET /api/members/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	m, err := h.service.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		h.logger.Error("get member", zap.Error(err))
		response.Internal(c, "failed to get member")
		return
	}
	response.OK(c, m)
}

// Create handles POST /api/members (admin only).
func (h *Handler) Create(c *gin.Context) {
	var m models.Member
	if err := c.ShouldBindJSON(&m); err != nil {
		response.BadRequest(c, response.BindingMessage(err))
		return
	}
	msg, err := h.service.Add(c.Request.Context(), &m)
	if err != nil {
		h.logger.Error("create member", zap.Error(err))
		response.Internal(c, "failed to create member")
		return
	}
	response.Message(c, msg)
}

// Update handles PUT /api/members/:id (admin only). The id always comes from
// the path; a missing member is reported, never created.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	var m models.Member
	if err := c.ShouldBindJSON(&m); err != nil {
		response.BadRequest(c, response.BindingMessage(err))
		return
	}
	msg, err := h.service.Update(c.Request.Context(), id, &m)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("update member", zap.Error(err))
		response.Internal(c, "failed to update member")
		return
	}
	response.Message(c, msg)
}

// Delete handles DELETE /api/members/:id (admin only).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}
	msg, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("delete member", zap.Error(err))
		response.Internal(c, "failed to delete member")
		return
	}
	response.Message(c, msg)
}
