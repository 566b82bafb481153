package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/dto"
	"github.com/yukikurage/task-follow-api/internal/services"
)

// UserHandler serves user creation and lookup.
type UserHandler struct {
	userService *services.UserService
	log         zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// CreateUser registers a new user. The admin flag defaults to false.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name  string `json:"name" binding:"required"`
		Admin *bool  `json:"admin"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	input := services.CreateUserInput{Name: req.Name}
	if req.Admin != nil {
		input.Admin = *req.Admin
	}

	user, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info().Str("user_uuid", user.UUID).Bool("admin", user.Admin).Msg("user created")
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetUser returns a user with its tasks and follows.
func (h *UserHandler) GetUser(c *gin.Context) {
	var req userRequest
	if !bindRequest(c, &req) {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), req.UserUUID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// userRequest is shared by every endpoint that only names a user.
type userRequest struct {
	UserUUID string `json:"user_uuid" form:"user_uuid" binding:"required"`
}
