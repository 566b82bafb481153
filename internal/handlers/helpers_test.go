package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/task-follow-api/internal/dto"
	"github.com/yukikurage/task-follow-api/internal/repository"
	"github.com/yukikurage/task-follow-api/internal/testutil"
)

type apiTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := testutil.OpenTestDB(t)
	router := NewRouter(zerolog.Nop(), NewHandlers(repository.NewStore(db), zerolog.Nop()))

	return apiTestEnv{
		db:     db,
		router: router,
	}
}

// perform sends payload as a JSON body; a nil payload sends no body at all.
func (env apiTestEnv) perform(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env apiTestEnv) createUser(t *testing.T, name string, admin bool) dto.UserDTO {
	t.Helper()

	payload := map[string]interface{}{"name": name}
	if admin {
		payload["admin"] = true
	}
	w := env.perform(t, http.MethodPost, "/api/new_user", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func (env apiTestEnv) createTask(t *testing.T, userUUID, content string) dto.TaskDTO {
	t.Helper()

	w := env.perform(t, http.MethodPost, "/api/new_task", map[string]interface{}{
		"user_uuid": userUUID,
		"content":   content,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func (env apiTestEnv) createFollow(t *testing.T, userUUID string, taskID uint64) dto.FollowDTO {
	t.Helper()

	w := env.perform(t, http.MethodPost, "/api/new_follow", map[string]interface{}{
		"user_uuid": userUUID,
		"task_id":   taskID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var follow dto.FollowDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &follow))
	return follow
}

func decodeTasks(t *testing.T, w *httptest.ResponseRecorder) []dto.TaskDTO {
	t.Helper()
	var tasks []dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	return tasks
}

func decodeFollows(t *testing.T, w *httptest.ResponseRecorder) []dto.FollowDTO {
	t.Helper()
	var follows []dto.FollowDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &follows))
	return follows
}
