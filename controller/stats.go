package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/service"
)

type StatsController struct {
	Svc *service.StatsService
}

func (ctrl StatsController) Dashboard(c *gin.Context) {
	stats, err := ctrl.Svc.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
