package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verdantis/herbal-life/backend/internal/service"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

type RemedyHandler struct {
	remedies *service.RemedyService
	cache    *service.CatalogCache
}

func NewRemedyHandler(remedies *service.RemedyService, cache *service.CatalogCache) *RemedyHandler {
	return &RemedyHandler{
		remedies: remedies,
		cache:    cache,
	}
}

// ListRemedies handles GET /remedies with optional category and search
// filters. The search term also matches ingredient names.
func (h *RemedyHandler) ListRemedies(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	if payload, ok := h.cache.Get(c.Request.Context(), "remedies", category, search); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	remedies, err := h.remedies.ListRemedies(c.Request.Context(), category, search)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]types.RemedyResponse, 0, len(remedies))
	for i := range remedies {
		responses = append(responses, types.NewRemedyResponse(&remedies[i]))
	}

	body, err := json.Marshal(gin.H{"remedies": responses})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.cache.Set(c.Request.Context(), "remedies", category, search, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetRemedy handles GET /remedies/:id
func (h *RemedyHandler) GetRemedy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid remedy id"})
		return
	}

	remedy, err := h.remedies.GetRemedy(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRemedyResponse(remedy))
}

// CreateRemedy handles POST /remedies. When the authenticated user is a
// doctor, the remedy is attributed to them.
func (h *RemedyHandler) CreateRemedy(c *gin.Context) {
	var req types.CreateRemedyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var doctorID *uuid.UUID
	if isDoctor, _ := c.Get("is_doctor"); isDoctor == true {
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uuid.UUID); ok {
				doctorID = &id
			}
		}
	}

	remedy, err := h.remedies.CreateRemedy(c.Request.Context(), &req, doctorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "remedies")
	c.JSON(http.StatusCreated, types.NewRemedyResponse(remedy))
}

// UpdateRemedy handles PUT /remedies/:id with PATCH semantics
func (h *RemedyHandler) UpdateRemedy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid remedy id"})
		return
	}

	var req types.UpdateRemedyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	remedy, err := h.remedies.UpdateRemedy(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "remedies")
	c.JSON(http.StatusOK, types.NewRemedyResponse(remedy))
}

// DeleteRemedy handles DELETE /remedies/:id
func (h *RemedyHandler) DeleteRemedy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid remedy id"})
		return
	}

	if err := h.remedies.DeleteRemedy(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "remedies")
	c.JSON(http.StatusOK, gin.H{"message": "remedy deleted"})
}
