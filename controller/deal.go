package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

type DealController struct {
	Store store.Store
}

func (ctrl DealController) List(c *gin.Context) {
	deals, err := ctrl.Store.ListDeals()
	if err != nil {
		logger.Warnf("[%s] list deals error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deals"})
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (ctrl DealController) Get(c *gin.Context) {
	deal, err := ctrl.Store.GetDeal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deal"})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (ctrl DealController) Create(c *gin.Context) {
	var input struct {
		ClientName     string `json:"clientName" binding:"required"`
		ClientType     string `json:"clientType"`
		Stage          string `json:"stage"`
		Value          string `json:"value"`
		Owner          string `json:"owner" binding:"required"`
		Status         string `json:"status"`
		AwarenessLevel string `json:"awarenessLevel"`
		Notes          string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid deal input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal := &model.Deal{
		ClientName:     input.ClientName,
		ClientType:     defaultStr(input.ClientType, "trainer"),
		Stage:          defaultStr(input.Stage, "lead"),
		Value:          input.Value,
		Owner:          input.Owner,
		Status:         defaultStr(input.Status, "new"),
		AwarenessLevel: input.AwarenessLevel,
		Notes:          input.Notes,
	}
	if err := ctrl.Store.CreateDeal(deal); err != nil {
		logger.Warnf("[%s] create deal error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deal"})
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func (ctrl DealController) Update(c *gin.Context) {
	var input struct {
		ClientName     *string `json:"clientName"`
		ClientType     *string `json:"clientType"`
		Stage          *string `json:"stage"`
		Value          *string `json:"value"`
		Owner          *string `json:"owner"`
		Status         *string `json:"status"`
		AwarenessLevel *string `json:"awarenessLevel"`
		Notes          *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "clientName", input.ClientName)
	setIf(updates, "clientType", input.ClientType)
	setIf(updates, "stage", input.Stage)
	setIf(updates, "value", input.Value)
	setIf(updates, "owner", input.Owner)
	setIf(updates, "status", input.Status)
	setIf(updates, "awarenessLevel", input.AwarenessLevel)
	setIf(updates, "notes", input.Notes)

	deal, err := ctrl.Store.UpdateDeal(c.Param("id"), updates)
	if err != nil {
		logger.Warnf("[%s] update deal error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deal"})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (ctrl DealController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteDeal(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deal"})
		return
	}
	c.Status(http.StatusNoContent)
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func setIf[T any](updates map[string]any, key string, v *T) {
	if v != nil {
		updates[key] = *v
	}
}
