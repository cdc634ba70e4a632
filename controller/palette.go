package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/service"
)

type PaletteController struct {
	Gen *service.GenerateService
}

// Generate streams color palette suggestions for a client brand.
func (ctrl PaletteController) Generate(c *gin.Context) {
	var input struct {
		ClientName        string   `json:"clientName"`
		ClientIndustry    string   `json:"clientIndustry"`
		ClientDescription string   `json:"clientDescription"`
		LogoColors        []string `json:"logoColors"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ClientIndustry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client industry is required"})
		return
	}

	prompt := service.PalettePrompt(input.ClientName, input.ClientIndustry, input.ClientDescription, input.LogoColors)
	_, _ = ctrl.Gen.StreamOnce(c, service.PaletteDesignerPersona, prompt, 0)
}
