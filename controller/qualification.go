package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/service"
	"salesdesk/store"
)

type QualificationController struct {
	Store store.Store
	Gen   *service.GenerateService
}

func (ctrl QualificationController) List(c *gin.Context) {
	qualifications, err := ctrl.Store.ListClientQualifications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch qualifications"})
		return
	}
	c.JSON(http.StatusOK, qualifications)
}

func (ctrl QualificationController) Create(c *gin.Context) {
	var input struct {
		ClientName          string `json:"clientName" binding:"required"`
		ClientType          string `json:"clientType"`
		ClientIndustry      string `json:"clientIndustry"`
		ClientDescription   string `json:"clientDescription"`
		AiPainPoints        string `json:"aiPainPoints"`
		DealID              string `json:"dealId"`
		Budget              string `json:"budget"`
		NeedLevel           int    `json:"needLevel"`
		AuthorityLevel      int    `json:"authorityLevel"`
		TimelineLevel       int    `json:"timelineLevel"`
		FitLevel            int    `json:"fitLevel"`
		TotalScore          int    `json:"totalScore"`
		QualificationResult string `json:"qualificationResult"`
		Notes               string `json:"notes"`
		ActionPlan          string `json:"actionPlan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid qualification input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qualification := &model.ClientQualification{
		ClientName:          input.ClientName,
		ClientType:          defaultStr(input.ClientType, "trainer"),
		ClientIndustry:      input.ClientIndustry,
		ClientDescription:   input.ClientDescription,
		AiPainPoints:        input.AiPainPoints,
		DealID:              input.DealID,
		Budget:              input.Budget,
		NeedLevel:           input.NeedLevel,
		AuthorityLevel:      input.AuthorityLevel,
		TimelineLevel:       input.TimelineLevel,
		FitLevel:            input.FitLevel,
		TotalScore:          input.TotalScore,
		QualificationResult: defaultStr(input.QualificationResult, "pending"),
		Notes:               input.Notes,
		ActionPlan:          input.ActionPlan,
	}
	if err := ctrl.Store.CreateClientQualification(qualification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create qualification"})
		return
	}
	c.JSON(http.StatusCreated, qualification)
}

func (ctrl QualificationController) Update(c *gin.Context) {
	var input struct {
		ClientName          *string `json:"clientName"`
		ClientType          *string `json:"clientType"`
		ClientIndustry      *string `json:"clientIndustry"`
		ClientDescription   *string `json:"clientDescription"`
		AiPainPoints        *string `json:"aiPainPoints"`
		DealID              *string `json:"dealId"`
		Budget              *string `json:"budget"`
		NeedLevel           *int    `json:"needLevel"`
		AuthorityLevel      *int    `json:"authorityLevel"`
		TimelineLevel       *int    `json:"timelineLevel"`
		FitLevel            *int    `json:"fitLevel"`
		TotalScore          *int    `json:"totalScore"`
		QualificationResult *string `json:"qualificationResult"`
		Notes               *string `json:"notes"`
		ActionPlan          *string `json:"actionPlan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "clientName", input.ClientName)
	setIf(updates, "clientType", input.ClientType)
	setIf(updates, "clientIndustry", input.ClientIndustry)
	setIf(updates, "clientDescription", input.ClientDescription)
	setIf(updates, "aiPainPoints", input.AiPainPoints)
	setIf(updates, "dealId", input.DealID)
	setIf(updates, "budget", input.Budget)
	setIf(updates, "needLevel", input.NeedLevel)
	setIf(updates, "authorityLevel", input.AuthorityLevel)
	setIf(updates, "timelineLevel", input.TimelineLevel)
	setIf(updates, "fitLevel", input.FitLevel)
	setIf(updates, "totalScore", input.TotalScore)
	setIf(updates, "qualificationResult", input.QualificationResult)
	setIf(updates, "notes", input.Notes)
	setIf(updates, "actionPlan", input.ActionPlan)

	qualification, err := ctrl.Store.UpdateClientQualification(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update qualification"})
		return
	}
	if qualification == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Qualification not found"})
		return
	}
	c.JSON(http.StatusOK, qualification)
}

func (ctrl QualificationController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteClientQualification(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete qualification"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Analyze streams a one-shot qualification analysis; nothing is stored.
func (ctrl QualificationController) Analyze(c *gin.Context) {
	var input struct {
		ClientName        string `json:"clientName"`
		ClientType        string `json:"clientType"`
		ClientIndustry    string `json:"clientIndustry"`
		ClientDescription string `json:"clientDescription"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ClientIndustry == "" || input.ClientDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client industry and description are required"})
		return
	}

	prompt := service.QualificationAnalysisPrompt(input.ClientName, input.ClientType, input.ClientIndustry, input.ClientDescription)
	_, _ = ctrl.Gen.StreamOnce(c, service.QualificationAnalystPersona, prompt, 0)
}
