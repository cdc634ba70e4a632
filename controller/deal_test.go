package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/model"
	"salesdesk/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newDealRouter(st store.Store) *gin.Engine {
	r := gin.New()
	ctrl := DealController{Store: st}
	r.GET("/api/deals", ctrl.List)
	r.GET("/api/deals/:id", ctrl.Get)
	r.POST("/api/deals", ctrl.Create)
	r.PATCH("/api/deals/:id", ctrl.Update)
	r.DELETE("/api/deals/:id", ctrl.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDealAppliesDefaults(t *testing.T) {
	st := store.NewMemStore()
	r := newDealRouter(st)

	w := doJSON(t, r, http.MethodPost, "/api/deals", `{"clientName":"مدرسة الأمل","owner":"sara"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var deal model.Deal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deal))
	assert.NotEmpty(t, deal.ID)
	assert.Equal(t, "trainer", deal.ClientType)
	assert.Equal(t, "lead", deal.Stage)
	assert.Equal(t, "new", deal.Status)
}

func TestCreateDealRejectsMissingFields(t *testing.T) {
	st := store.NewMemStore()
	r := newDealRouter(st)

	w := doJSON(t, r, http.MethodPost, "/api/deals", `{"clientName":"no owner"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])

	deals, err := st.ListDeals()
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestGetDealNotFound(t *testing.T) {
	st := store.NewMemStore()
	r := newDealRouter(st)

	w := doJSON(t, r, http.MethodGet, "/api/deals/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Deal not found")
}

func TestPatchDealPartialUpdate(t *testing.T) {
	st := store.NewMemStore()
	deal := &model.Deal{ClientName: "c", ClientType: "academy", Stage: "lead", Owner: "o", Status: "new"}
	require.NoError(t, st.CreateDeal(deal))
	r := newDealRouter(st)

	w := doJSON(t, r, http.MethodPatch, "/api/deals/"+deal.ID, `{"stage":"closing","status":"closed_won"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Deal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "closing", updated.Stage)
	assert.Equal(t, "closed_won", updated.Status)
	assert.Equal(t, "academy", updated.ClientType)

	w = doJSON(t, r, http.MethodPatch, "/api/deals/nope", `{"stage":"closing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDealReturnsNoContent(t *testing.T) {
	st := store.NewMemStore()
	deal := &model.Deal{ClientName: "c", ClientType: "trainer", Stage: "lead", Owner: "o", Status: "new"}
	require.NoError(t, st.CreateDeal(deal))
	r := newDealRouter(st)

	w := doJSON(t, r, http.MethodDelete, "/api/deals/"+deal.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Deleting again is not an error.
	w = doJSON(t, r, http.MethodDelete, "/api/deals/"+deal.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
