package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"trimly/services/campaign"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignHandler exposes marketing campaign endpoints.
type CampaignHandler struct {
	Service campaign.CampaignService
}

func NewCampaignHandler(svc campaign.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: svc}
}

func (h *CampaignHandler) CreateCampaignHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req campaign.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateCampaign(shopID, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create campaign", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampaignHandler) GetCampaignHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	cam, err := h.Service.GetCampaign(shopID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Campaign not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, cam)
}

func (h *CampaignHandler) ListCampaignsHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	campaigns, err := h.Service.ListCampaigns(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list campaigns", err.Error())
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) UpdateCampaignHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req campaign.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateCampaign(shopID, c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update campaign", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampaignHandler) DeleteCampaignHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	if err := h.Service.DeleteCampaign(shopID, c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete campaign", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
}

// UploadCampaignImageHandler accepts a multipart "image" file, saves it to a
// temp path, and hands it to the campaign service for upload.
func (h *CampaignHandler) UploadCampaignImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	shopID := shopIDFromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing image file", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to save uploaded campaign image", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save upload", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	updated, err := h.Service.AttachImage(c.Request.Context(), shopID, c.Param("id"), tmpPath)
	if err != nil {
		logger.Error("Failed to attach campaign image", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to attach image", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
