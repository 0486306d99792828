package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"trimly/config"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantRequest is forwarded to the assistant microservice along with the
// authenticated shop ID.
type AssistantRequest struct {
	Input  string `json:"input" binding:"required"`
	ShopID string `json:"shop_id"`
}

var assistantHTTPClient = &http.Client{Timeout: 5 * time.Second}

// assistantServiceURL resolves the configured assistant base URL against the
// given endpoint, falling back to the docker-compose default.
func assistantServiceURL(endpoint string) string {
	base := config.AppConfig.AIServiceURL
	if base == "" {
		return fmt.Sprintf("http://assistant-service:8000/%s", endpoint)
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("http://assistant-service:8000/%s", endpoint)
	}
	u.Path = path.Join("/", endpoint)
	return u.String()
}

// AssistantHandler forwards a natural-language question to the assistant
// microservice and relays its answer.
func AssistantHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid assistant request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	req.ShopID = shopIDFromContext(c)

	payload, err := json.Marshal(req)
	if err != nil {
		logger.Error("Failed to marshal assistant request", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}

	resp, err := assistantHTTPClient.Post(assistantServiceURL("ask"), "application/json", bytes.NewBuffer(payload))
	if err != nil {
		logger.Error("Failed to call assistant service", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Assistant unavailable", err.Error())
		return
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error("Failed to decode assistant response", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Assistant returned an invalid response", err.Error())
		return
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("Assistant service returned non-OK status", zap.Int("status", resp.StatusCode))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant service error", "details": body})
		return
	}
	c.JSON(http.StatusOK, body)
}
