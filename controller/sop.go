package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

type SopController struct {
	Store store.Store
}

func (ctrl SopController) List(c *gin.Context) {
	steps, err := ctrl.Store.ListSopSteps()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch SOP steps"})
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (ctrl SopController) Create(c *gin.Context) {
	var input struct {
		StepNumber      int    `json:"stepNumber" binding:"required"`
		Title           string `json:"title" binding:"required"`
		Objective       string `json:"objective" binding:"required"`
		ResponsibleRole string `json:"responsibleRole" binding:"required"`
		Actions         string `json:"actions" binding:"required"`
		SuccessCriteria string `json:"successCriteria" binding:"required"`
		CommonMistakes  string `json:"commonMistakes"`
		NextStepYes     string `json:"nextStepYes"`
		NextStepNo      string `json:"nextStepNo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid SOP step input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step := &model.SopStep{
		StepNumber:      input.StepNumber,
		Title:           input.Title,
		Objective:       input.Objective,
		ResponsibleRole: input.ResponsibleRole,
		Actions:         input.Actions,
		SuccessCriteria: input.SuccessCriteria,
		CommonMistakes:  input.CommonMistakes,
		NextStepYes:     input.NextStepYes,
		NextStepNo:      input.NextStepNo,
	}
	if err := ctrl.Store.CreateSopStep(step); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create step"})
		return
	}
	c.JSON(http.StatusCreated, step)
}

func (ctrl SopController) Update(c *gin.Context) {
	var input struct {
		StepNumber      *int    `json:"stepNumber"`
		Title           *string `json:"title"`
		Objective       *string `json:"objective"`
		ResponsibleRole *string `json:"responsibleRole"`
		Actions         *string `json:"actions"`
		SuccessCriteria *string `json:"successCriteria"`
		CommonMistakes  *string `json:"commonMistakes"`
		NextStepYes     *string `json:"nextStepYes"`
		NextStepNo      *string `json:"nextStepNo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "stepNumber", input.StepNumber)
	setIf(updates, "title", input.Title)
	setIf(updates, "objective", input.Objective)
	setIf(updates, "responsibleRole", input.ResponsibleRole)
	setIf(updates, "actions", input.Actions)
	setIf(updates, "successCriteria", input.SuccessCriteria)
	setIf(updates, "commonMistakes", input.CommonMistakes)
	setIf(updates, "nextStepYes", input.NextStepYes)
	setIf(updates, "nextStepNo", input.NextStepNo)

	step, err := ctrl.Store.UpdateSopStep(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update step"})
		return
	}
	if step == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Step not found"})
		return
	}
	c.JSON(http.StatusOK, step)
}
