package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yukikurage/task-follow-api/internal/middleware"
	"github.com/yukikurage/task-follow-api/internal/repository"
	"github.com/yukikurage/task-follow-api/internal/services"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Users   *UserHandler
	Tasks   *TaskHandler
	Follows *FollowHandler
	Admin   *AdminHandler
}

// NewHandlers wires services and handlers on top of store.
func NewHandlers(store repository.Store, log zerolog.Logger) Handlers {
	return Handlers{
		Users:   NewUserHandler(services.NewUserService(store), log),
		Tasks:   NewTaskHandler(services.NewTaskService(store), log),
		Follows: NewFollowHandler(services.NewFollowService(store), log),
		Admin:   NewAdminHandler(services.NewAdminService(store), log),
	}
}

// NewRouter builds the gin engine with logging, recovery and every API route.
func NewRouter(log zerolog.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Follow API is running",
		})
	})

	api := r.Group("/api")
	{
		// Users
		api.POST("/new_user", h.Users.CreateUser)
		api.GET("/get_user", h.Users.GetUser)

		// Tasks
		api.GET("/get_incomplete_tasks", h.Tasks.ListIncompleteTasks)
		api.GET("/get_complete_tasks", h.Tasks.ListCompleteTasks)
		api.POST("/new_task", h.Tasks.CreateTask)
		api.PUT("/update_task", h.Tasks.UpdateTask)
		api.DELETE("/delete_task", h.Tasks.DeleteTask)

		// Follows
		api.GET("/get_follows", h.Follows.ListFollows)
		api.POST("/new_follow", h.Follows.CreateFollow)
		api.DELETE("/delete_follow", h.Follows.DeleteFollow)

		// Admin
		api.DELETE("/delete_user_data", h.Admin.PurgeUserData)
	}

	return r
}
