package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/service"
	"salesdesk/store"
)

type AnalysisController struct {
	Store store.Store
	Gen   *service.GenerateService
}

func (ctrl AnalysisController) List(c *gin.Context) {
	analyses, err := ctrl.Store.ListClientAnalyses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analyses"})
		return
	}
	c.JSON(http.StatusOK, analyses)
}

func (ctrl AnalysisController) Create(c *gin.Context) {
	var input struct {
		ClientName     string `json:"clientName" binding:"required"`
		ClientType     string `json:"clientType"`
		Field          string `json:"field" binding:"required"`
		CurrentMethod  string `json:"currentMethod"`
		TargetAudience string `json:"targetAudience"`
		Experience     string `json:"experience"`
		Challenges     string `json:"challenges"`
		Goals          string `json:"goals"`
		AdditionalInfo string `json:"additionalInfo"`
		AiAnalysis     string `json:"aiAnalysis"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid analysis input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis := &model.ClientAnalysis{
		ClientName:     input.ClientName,
		ClientType:     defaultStr(input.ClientType, "trainer"),
		Field:          input.Field,
		CurrentMethod:  input.CurrentMethod,
		TargetAudience: input.TargetAudience,
		Experience:     input.Experience,
		Challenges:     input.Challenges,
		Goals:          input.Goals,
		AdditionalInfo: input.AdditionalInfo,
		AiAnalysis:     input.AiAnalysis,
	}
	if err := ctrl.Store.CreateClientAnalysis(analysis); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create analysis"})
		return
	}
	c.JSON(http.StatusCreated, analysis)
}

func (ctrl AnalysisController) Update(c *gin.Context) {
	var input struct {
		ClientName     *string `json:"clientName"`
		ClientType     *string `json:"clientType"`
		Field          *string `json:"field"`
		CurrentMethod  *string `json:"currentMethod"`
		TargetAudience *string `json:"targetAudience"`
		Experience     *string `json:"experience"`
		Challenges     *string `json:"challenges"`
		Goals          *string `json:"goals"`
		AdditionalInfo *string `json:"additionalInfo"`
		AiAnalysis     *string `json:"aiAnalysis"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "clientName", input.ClientName)
	setIf(updates, "clientType", input.ClientType)
	setIf(updates, "field", input.Field)
	setIf(updates, "currentMethod", input.CurrentMethod)
	setIf(updates, "targetAudience", input.TargetAudience)
	setIf(updates, "experience", input.Experience)
	setIf(updates, "challenges", input.Challenges)
	setIf(updates, "goals", input.Goals)
	setIf(updates, "additionalInfo", input.AdditionalInfo)
	setIf(updates, "aiAnalysis", input.AiAnalysis)

	analysis, err := ctrl.Store.UpdateClientAnalysis(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update analysis"})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (ctrl AnalysisController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteClientAnalysis(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analysis"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate streams a one-shot needs analysis from the intake form.
func (ctrl AnalysisController) Generate(c *gin.Context) {
	var input struct {
		ClientName     string `json:"clientName"`
		ClientType     string `json:"clientType"`
		Field          string `json:"field"`
		CurrentMethod  string `json:"currentMethod"`
		TargetAudience string `json:"targetAudience"`
		Experience     string `json:"experience"`
		Challenges     string `json:"challenges"`
		Goals          string `json:"goals"`
		AdditionalInfo string `json:"additionalInfo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ClientName == "" || input.Field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "اسم العميل والمجال مطلوبان"})
		return
	}

	prompt := service.NeedsAnalysisPrompt(service.NeedsAnalysisInput{
		ClientName:     input.ClientName,
		ClientType:     input.ClientType,
		Field:          input.Field,
		CurrentMethod:  input.CurrentMethod,
		TargetAudience: input.TargetAudience,
		Experience:     input.Experience,
		Challenges:     input.Challenges,
		Goals:          input.Goals,
		AdditionalInfo: input.AdditionalInfo,
	})
	_, _ = ctrl.Gen.StreamOnce(c, service.NeedsAnalystPersona, prompt, 3000)
}
