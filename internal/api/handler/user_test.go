package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/service"
	"github.com/qs3c/subnego_go_server/internal/store"
	"github.com/qs3c/subnego_go_server/internal/testutil"
)

func setupUserHandler(t *testing.T) (*UserHandler, *store.Store) {
	t.Helper()

	st := store.New()
	userService := service.NewUserService(st)
	return NewUserHandler(userService), st
}

func TestUserHandler_Create(t *testing.T) {
	handler, st := setupUserHandler(t)

	router := gin.New()
	router.POST("/users", handler.Create)

	w := performRequest(router, "POST", "/users", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)
	assert.Equal(t, model.ConsentPending, data["consent_status"])

	_, ok := st.GetUser(data["id"].(string))
	assert.True(t, ok)
}

func TestUserHandler_Get(t *testing.T) {
	handler, st := setupUserHandler(t)

	user := testutil.TestUser(t, st, testutil.WithConsent(model.ConsentGranted))

	router := gin.New()
	router.GET("/users/:user_id", handler.Get)

	w := performRequest(router, "GET", "/users/"+user.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)
	assert.Equal(t, model.ConsentGranted, data["consent_status"])

	w = performRequest(router, "GET", "/users/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	data = decodeBody(t, w)
	assert.Equal(t, "user not found", data["detail"])
}
