package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/dto"
	"github.com/yukikurage/task-follow-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	log         zerolog.Logger
}

func NewTaskHandler(taskService *services.TaskService, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// ListIncompleteTasks returns the user's pending tasks
func (h *TaskHandler) ListIncompleteTasks(c *gin.Context) {
	h.listTasks(c, false)
}

// ListCompleteTasks returns the user's finished tasks
func (h *TaskHandler) ListCompleteTasks(c *gin.Context) {
	h.listTasks(c, true)
}

func (h *TaskHandler) listTasks(c *gin.Context, completed bool) {
	var req userRequest
	if !bindRequest(c, &req) {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), req.UserUUID, completed)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task for user_uuid
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		UserUUID  string `json:"user_uuid" binding:"required"`
		Content   string `json:"content"`
		Completed *bool  `json:"completed"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	input := services.CreateTaskInput{
		OwnerUUID: req.UserUUID,
		Content:   req.Content,
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask overwrites a task's content and, when present, its completed flag
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		TaskID    uint64 `json:"task_id" binding:"required"`
		Content   string `json:"content"`
		Completed *bool  `json:"completed"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), req.TaskID, services.UpdateTaskInput{
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	type DeleteTaskRequest struct {
		TaskID uint64 `json:"task_id" form:"task_id" binding:"required"`
	}

	var req DeleteTaskRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), req.TaskID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "task deleted!",
	})
}
