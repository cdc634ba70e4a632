package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/model"
	"salesdesk/store"
)

func newReflectionRouter(st store.Store) *gin.Engine {
	r := gin.New()
	ctrl := ReflectionController{Store: st}
	r.GET("/api/reflections", ctrl.List)
	r.GET("/api/reflections/date/:date", ctrl.GetByDate)
	r.POST("/api/reflections", ctrl.Create)
	r.PATCH("/api/reflections/:id", ctrl.Update)
	r.DELETE("/api/reflections/:id", ctrl.Delete)
	return r
}

func TestCreateReflectionDefaultsMood(t *testing.T) {
	st := store.NewMemStore()
	r := newReflectionRouter(st)

	w := doJSON(t, r, http.MethodPost, "/api/reflections", `{"date":"2026-08-31","learned":"شيء جديد"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var reflection model.DailyReflection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reflection))
	assert.Equal(t, 3, reflection.Mood)

	// An explicit mood, including extremes, survives.
	w = doJSON(t, r, http.MethodPost, "/api/reflections", `{"date":"2026-09-01","learned":"x","mood":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reflection))
	assert.Equal(t, 1, reflection.Mood)
}

func TestGetReflectionByDate(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.CreateDailyReflection(&model.DailyReflection{Date: "2026-08-31", Learned: "y", Mood: 4}))
	r := newReflectionRouter(st)

	w := doJSON(t, r, http.MethodGet, "/api/reflections/date/2026-08-31", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2026-08-31"`)

	// A date with no entry answers 200 with a null body, not 404.
	w = doJSON(t, r, http.MethodGet, "/api/reflections/date/2026-01-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
