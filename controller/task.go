package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

type TaskController struct {
	Store store.Store
}

func (ctrl TaskController) List(c *gin.Context) {
	tasks, err := ctrl.Store.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (ctrl TaskController) Create(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		Status      string `json:"status"`
		Category    string `json:"category"`
		DueDate     string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid task input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    defaultStr(input.Priority, "medium"),
		Status:      defaultStr(input.Status, "pending"),
		Category:    defaultStr(input.Category, "general"),
		DueDate:     input.DueDate,
	}
	if err := ctrl.Store.CreateTask(task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (ctrl TaskController) Update(c *gin.Context) {
	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
		Status      *string `json:"status"`
		Category    *string `json:"category"`
		DueDate     *string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "title", input.Title)
	setIf(updates, "description", input.Description)
	setIf(updates, "priority", input.Priority)
	setIf(updates, "status", input.Status)
	setIf(updates, "category", input.Category)
	setIf(updates, "dueDate", input.DueDate)

	// Completion time follows the status transition.
	if input.Status != nil {
		if *input.Status == "completed" {
			updates["completedAt"] = time.Now()
		} else {
			updates["completedAt"] = nil
		}
	}

	task, err := ctrl.Store.UpdateTask(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (ctrl TaskController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteTask(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.Status(http.StatusNoContent)
}
