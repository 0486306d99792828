package handlers

import (
	"net/http"
	"strconv"
	"time"

	"trimly/services/review"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// AddReviewHandler records a new customer review.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req review.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.AddReview(shopID, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to add review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListReviewsHandler lists reviews, optionally filtered to unanswered ones.
// The "days" query bounds the lookback window (default 30).
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid 'days' parameter", "expected a positive integer")
			return
		}
		days = parsed
	}
	since := time.Now().AddDate(0, 0, -days)

	var (
		reviews interface{}
		err     error
	)
	if c.Query("unanswered") == "true" {
		reviews, err = h.Service.ListUnanswered(shopID, since)
	} else {
		reviews, err = h.Service.ListReviews(shopID, since)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// RespondToReviewHandler stores the shop's reply to a review.
func (h *ReviewHandler) RespondToReviewHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.Respond(shopID, c.Param("id"), req.Response)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to respond to review", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
