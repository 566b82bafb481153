package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/dto"
	"github.com/yukikurage/task-follow-api/internal/services"
)

type FollowHandler struct {
	followService *services.FollowService
	log           zerolog.Logger
}

func NewFollowHandler(followService *services.FollowService, log zerolog.Logger) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		log:           log,
	}
}

// ListFollows returns the follows made by user_uuid
func (h *FollowHandler) ListFollows(c *gin.Context) {
	var req userRequest
	if !bindRequest(c, &req) {
		return
	}

	follows, err := h.followService.ListFollows(c.Request.Context(), req.UserUUID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowDTOs(follows))
}

// CreateFollow makes user_uuid follow task_id
func (h *FollowHandler) CreateFollow(c *gin.Context) {
	type CreateFollowRequest struct {
		UserUUID string `json:"user_uuid" binding:"required"`
		TaskID   uint64 `json:"task_id" binding:"required"`
	}

	var req CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	follow, err := h.followService.CreateFollow(c.Request.Context(), req.UserUUID, req.TaskID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFollowDTO(*follow))
}

// DeleteFollow deletes a follow
func (h *FollowHandler) DeleteFollow(c *gin.Context) {
	type DeleteFollowRequest struct {
		FollowID uint64 `json:"follow_id" form:"follow_id" binding:"required"`
	}

	var req DeleteFollowRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := h.followService.DeleteFollow(c.Request.Context(), req.FollowID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "follow deleted!",
	})
}
