package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

type ReflectionController struct {
	Store store.Store
}

func (ctrl ReflectionController) List(c *gin.Context) {
	reflections, err := ctrl.Store.ListDailyReflections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reflections"})
		return
	}
	c.JSON(http.StatusOK, reflections)
}

// GetByDate returns the reflection for a YYYY-MM-DD date, or null.
func (ctrl ReflectionController) GetByDate(c *gin.Context) {
	reflection, err := ctrl.Store.GetDailyReflectionByDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reflection"})
		return
	}
	c.JSON(http.StatusOK, reflection)
}

func (ctrl ReflectionController) Create(c *gin.Context) {
	var input struct {
		Date         string `json:"date" binding:"required"`
		Learned      string `json:"learned" binding:"required"`
		Shortcomings string `json:"shortcomings"`
		Wins         string `json:"wins"`
		Goals        string `json:"goals"`
		Mood         *int   `json:"mood"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid reflection input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood := 3
	if input.Mood != nil {
		mood = *input.Mood
	}
	reflection := &model.DailyReflection{
		Date:         input.Date,
		Learned:      input.Learned,
		Shortcomings: input.Shortcomings,
		Wins:         input.Wins,
		Goals:        input.Goals,
		Mood:         mood,
	}
	if err := ctrl.Store.CreateDailyReflection(reflection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reflection"})
		return
	}
	c.JSON(http.StatusCreated, reflection)
}

func (ctrl ReflectionController) Update(c *gin.Context) {
	var input struct {
		Date         *string `json:"date"`
		Learned      *string `json:"learned"`
		Shortcomings *string `json:"shortcomings"`
		Wins         *string `json:"wins"`
		Goals        *string `json:"goals"`
		Mood         *int    `json:"mood"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "date", input.Date)
	setIf(updates, "learned", input.Learned)
	setIf(updates, "shortcomings", input.Shortcomings)
	setIf(updates, "wins", input.Wins)
	setIf(updates, "goals", input.Goals)
	setIf(updates, "mood", input.Mood)

	reflection, err := ctrl.Store.UpdateDailyReflection(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reflection"})
		return
	}
	if reflection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reflection not found"})
		return
	}
	c.JSON(http.StatusOK, reflection)
}

func (ctrl ReflectionController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteDailyReflection(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reflection"})
		return
	}
	c.Status(http.StatusNoContent)
}
