package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

type ReferralController struct {
	Store store.Store
}

func (ctrl ReferralController) List(c *gin.Context) {
	referrals, err := ctrl.Store.ListReferrals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
		return
	}
	c.JSON(http.StatusOK, referrals)
}

func (ctrl ReferralController) Create(c *gin.Context) {
	var input struct {
		ReferrerName   string `json:"referrerName" binding:"required"`
		ReferrerDealID string `json:"referrerDealId"`
		ReferredName   string `json:"referredName" binding:"required"`
		ReferredPhone  string `json:"referredPhone"`
		ReferredEmail  string `json:"referredEmail"`
		ReferredType   string `json:"referredType"`
		Status         string `json:"status"`
		Notes          string `json:"notes"`
		FollowUpDate   string `json:"followUpDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warnf("[%s] Invalid referral input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	referral := &model.Referral{
		ReferrerName:   input.ReferrerName,
		ReferrerDealID: input.ReferrerDealID,
		ReferredName:   input.ReferredName,
		ReferredPhone:  input.ReferredPhone,
		ReferredEmail:  input.ReferredEmail,
		ReferredType:   defaultStr(input.ReferredType, "trainer"),
		Status:         defaultStr(input.Status, "pending"),
		Notes:          input.Notes,
		FollowUpDate:   input.FollowUpDate,
	}
	if err := ctrl.Store.CreateReferral(referral); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral"})
		return
	}
	c.JSON(http.StatusCreated, referral)
}

func (ctrl ReferralController) Update(c *gin.Context) {
	var input struct {
		ReferrerName   *string `json:"referrerName"`
		ReferrerDealID *string `json:"referrerDealId"`
		ReferredName   *string `json:"referredName"`
		ReferredPhone  *string `json:"referredPhone"`
		ReferredEmail  *string `json:"referredEmail"`
		ReferredType   *string `json:"referredType"`
		Status         *string `json:"status"`
		Notes          *string `json:"notes"`
		FollowUpDate   *string `json:"followUpDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]any{}
	setIf(updates, "referrerName", input.ReferrerName)
	setIf(updates, "referrerDealId", input.ReferrerDealID)
	setIf(updates, "referredName", input.ReferredName)
	setIf(updates, "referredPhone", input.ReferredPhone)
	setIf(updates, "referredEmail", input.ReferredEmail)
	setIf(updates, "referredType", input.ReferredType)
	setIf(updates, "status", input.Status)
	setIf(updates, "notes", input.Notes)
	setIf(updates, "followUpDate", input.FollowUpDate)

	referral, err := ctrl.Store.UpdateReferral(c.Param("id"), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update referral"})
		return
	}
	if referral == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Referral not found"})
		return
	}
	c.JSON(http.StatusOK, referral)
}

func (ctrl ReferralController) Delete(c *gin.Context) {
	if err := ctrl.Store.DeleteReferral(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete referral"})
		return
	}
	c.Status(http.StatusNoContent)
}
