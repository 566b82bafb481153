package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yukikurage/task-follow-api/internal/dto"
	apierrors "github.com/yukikurage/task-follow-api/internal/errors"
	"github.com/yukikurage/task-follow-api/internal/models"
)

// TaskHandlerTestSuite drives the task routes through the full router
type TaskHandlerTestSuite struct {
	suite.Suite
	env   apiTestEnv
	alice dto.UserDTO
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = setupAPITestEnv(suite.T())
	suite.alice = suite.env.createUser(suite.T(), "alice", false)
}

func (suite *TaskHandlerTestSuite) listTasks(path, userUUID string) []dto.TaskDTO {
	w := suite.env.perform(suite.T(), http.MethodGet, path+"?user_uuid="+userUUID, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return decodeTasks(suite.T(), w)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	w := suite.env.perform(suite.T(), http.MethodPost, "/api/new_task", map[string]interface{}{
		"user_uuid": suite.alice.UUID,
		"content":   "buy milk",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("buy milk", response["content"])
	suite.Equal(false, response["completed"])
	suite.NotZero(response["id"])
	suite.NotContains(response, "user_id")
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Completed() {
	w := suite.env.perform(suite.T(), http.MethodPost, "/api/new_task", map[string]interface{}{
		"user_uuid": suite.alice.UUID,
		"content":   "already done",
		"completed": true,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	done := suite.listTasks("/api/get_complete_tasks", suite.alice.UUID)
	suite.Require().Len(done, 1)
	suite.Equal("already done", done[0].Content)
	suite.Empty(suite.listTasks("/api/get_incomplete_tasks", suite.alice.UUID))
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Invalid() {
	cases := map[string]interface{}{
		"missing user":  map[string]interface{}{"content": "x"},
		"empty content": map[string]interface{}{"user_uuid": suite.alice.UUID, "content": ""},
		"long content":  map[string]interface{}{"user_uuid": suite.alice.UUID, "content": strings.Repeat("c", 501)},
		"bad completed": map[string]interface{}{"user_uuid": suite.alice.UUID, "content": "x", "completed": "yes"},
	}

	for name, payload := range cases {
		suite.Run(name, func() {
			w := suite.env.perform(suite.T(), http.MethodPost, "/api/new_task", payload)
			suite.Equal(http.StatusBadRequest, w.Code)

			var apiErr apierrors.APIError
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &apiErr))
			suite.Equal(apierrors.ErrCodeInvalidInput, apiErr.Code)
		})
	}

	var count int64
	suite.Require().NoError(suite.env.db.Model(&models.Task{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownUser() {
	w := suite.env.perform(suite.T(), http.MethodPost, "/api/new_task", map[string]interface{}{
		"user_uuid": "nobody",
		"content":   "orphan",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_FiltersByCompletionInCreationOrder() {
	first := suite.env.createTask(suite.T(), suite.alice.UUID, "first")
	second := suite.env.createTask(suite.T(), suite.alice.UUID, "second")
	third := suite.env.createTask(suite.T(), suite.alice.UUID, "third")

	w := suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"task_id":   second.ID,
		"content":   "second",
		"completed": true,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	open := suite.listTasks("/api/get_incomplete_tasks", suite.alice.UUID)
	suite.Require().Len(open, 2)
	suite.Equal(first.ID, open[0].ID)
	suite.Equal(third.ID, open[1].ID)

	done := suite.listTasks("/api/get_complete_tasks", suite.alice.UUID)
	suite.Require().Len(done, 1)
	suite.Equal(second.ID, done[0].ID)
}

func (suite *TaskHandlerTestSuite) TestListTasks_JSONBody() {
	suite.env.createTask(suite.T(), suite.alice.UUID, "from body")

	w := suite.env.perform(suite.T(), http.MethodGet, "/api/get_incomplete_tasks", map[string]string{
		"user_uuid": suite.alice.UUID,
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(decodeTasks(suite.T(), w), 1)
}

func (suite *TaskHandlerTestSuite) TestListTasks_EmptyIsArray() {
	w := suite.env.perform(suite.T(), http.MethodGet, "/api/get_complete_tasks?user_uuid="+suite.alice.UUID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *TaskHandlerTestSuite) TestListTasks_Errors() {
	w := suite.env.perform(suite.T(), http.MethodGet, "/api/get_incomplete_tasks", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.env.perform(suite.T(), http.MethodGet, "/api/get_incomplete_tasks?user_uuid=nobody", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_ContentOnlyKeepsCompleted() {
	task := suite.env.createTask(suite.T(), suite.alice.UUID, "draft")

	w := suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"task_id":   task.ID,
		"content":   "x",
		"completed": true,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"task_id": task.ID,
		"content": "y",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal(task.ID, updated.ID)
	suite.Equal("y", updated.Content)
	suite.True(updated.Completed)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_Errors() {
	task := suite.env.createTask(suite.T(), suite.alice.UUID, "draft")

	w := suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"task_id": task.ID + 100,
		"content": "y",
	})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"task_id": task.ID,
		"content": "",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.env.perform(suite.T(), http.MethodPut, "/api/update_task", map[string]interface{}{
		"content": "y",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	open := suite.listTasks("/api/get_incomplete_tasks", suite.alice.UUID)
	suite.Require().Len(open, 1)
	suite.Equal("draft", open[0].Content)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Twice() {
	task := suite.env.createTask(suite.T(), suite.alice.UUID, "short lived")
	url := fmt.Sprintf("/api/delete_task?task_id=%d", task.ID)

	w := suite.env.perform(suite.T(), http.MethodDelete, url, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"task deleted!"}`, w.Body.String())

	w = suite.env.perform(suite.T(), http.MethodDelete, url, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Empty(suite.listTasks("/api/get_incomplete_tasks", suite.alice.UUID))
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_DetachesFollows() {
	bob := suite.env.createUser(suite.T(), "bob", false)
	task := suite.env.createTask(suite.T(), suite.alice.UUID, "shared")
	follow := suite.env.createFollow(suite.T(), bob.UUID, task.ID)

	w := suite.env.perform(suite.T(), http.MethodDelete, "/api/delete_task", map[string]interface{}{
		"task_id": task.ID,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.env.perform(suite.T(), http.MethodGet, "/api/get_follows?user_uuid="+bob.UUID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	follows := decodeFollows(suite.T(), w)
	suite.Require().Len(follows, 1)
	suite.Equal(follow.ID, follows[0].ID)
	suite.Nil(follows[0].TaskID)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
