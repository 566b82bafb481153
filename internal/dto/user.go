package dto

import (
	"github.com/yukikurage/task-follow-api/internal/models"
)

// UserDTO represents a user in API responses. The internal id is never exposed.
type UserDTO struct {
	UUID    string      `json:"uuid"`
	Name    string      `json:"name"`
	Admin   bool        `json:"admin"`
	Tasks   []TaskDTO   `json:"tasks"`
	Follows []FollowDTO `json:"follows"`
}

// ToUserDTO converts a User model, with whatever tasks and follows are loaded
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UUID:    user.UUID,
		Name:    user.Name,
		Admin:   user.Admin,
		Tasks:   ToTaskDTOs(user.Tasks),
		Follows: ToFollowDTOs(user.Follows),
	}
}
