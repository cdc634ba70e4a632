package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"salesdesk/model"
	"salesdesk/service"
	"salesdesk/store"
)

type KnowledgeController struct {
	Store store.Store
	Svc   *service.KnowledgeService
}

func (ctrl KnowledgeController) List(c *gin.Context) {
	files, err := ctrl.Store.ListKnowledgeFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}
	c.JSON(http.StatusOK, files)
}

func (ctrl KnowledgeController) Get(c *gin.Context) {
	file, err := ctrl.Store.GetKnowledgeFile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	if file == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.JSON(http.StatusOK, file)
}

func (ctrl KnowledgeController) Create(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Type    string `json:"type" binding:"required"`
		Size    string `json:"size" binding:"required"`
		Tag     string `json:"tag"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid file input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file := &model.KnowledgeFile{
		Name:    input.Name,
		Type:    input.Type,
		Size:    input.Size,
		Tag:     defaultStr(input.Tag, "general"),
		Content: input.Content,
	}
	if err := ctrl.Store.CreateKnowledgeFile(file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create file"})
		return
	}
	c.JSON(http.StatusCreated, file)
}

func (ctrl KnowledgeController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteKnowledgeFile(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Import pulls a web page into the knowledge base as markdown.
func (ctrl KnowledgeController) Import(c *gin.Context) {
	var input struct {
		URL string `json:"url" binding:"required"`
		Tag string `json:"tag"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := ctrl.Svc.ImportFromURL(input.URL, input.Tag)
	if err != nil {
		logger.Warnf("[%s] import %s error, %s", c.GetString("requestId"), input.URL, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, file)
}

// RenderHTML returns the stored markdown rendered to HTML for preview.
func (ctrl KnowledgeController) RenderHTML(c *gin.Context) {
	file, err := ctrl.Store.GetKnowledgeFile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	if file == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	html := markdown.ToHTML([]byte(file.Content), nil, nil)
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
