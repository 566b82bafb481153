package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
	log          zerolog.Logger
}

func NewAdminHandler(adminService *services.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		log:          log,
	}
}

// PurgeUserData deletes the target's tasks and follows. user_uuid must name an admin.
func (h *AdminHandler) PurgeUserData(c *gin.Context) {
	type PurgeUserDataRequest struct {
		UserUUID       string `json:"user_uuid" binding:"required"`
		TargetUserUUID string `json:"target_user_uuid" binding:"required"`
	}

	var req PurgeUserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	result, err := h.adminService.PurgeUserData(c.Request.Context(), req.UserUUID, req.TargetUserUUID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("admin_uuid", req.UserUUID).
		Str("target_uuid", req.TargetUserUUID).
		Int64("tasks_deleted", result.TasksDeleted).
		Int64("follows_deleted", result.FollowsDeleted).
		Msg("user data purged")

	c.JSON(http.StatusOK, gin.H{
		"message": "user data deleted!",
	})
}
