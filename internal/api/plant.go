package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verdantis/herbal-life/backend/internal/service"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

const maxImageUploadBytes = 5 << 20

type PlantHandler struct {
	plants *service.PlantService
	images *service.ImageService
	cache  *service.CatalogCache
}

func NewPlantHandler(plants *service.PlantService, images *service.ImageService, cache *service.CatalogCache) *PlantHandler {
	return &PlantHandler{
		plants: plants,
		images: images,
		cache:  cache,
	}
}

// ListPlants handles GET /plants with optional category and search filters.
func (h *PlantHandler) ListPlants(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	if payload, ok := h.cache.Get(c.Request.Context(), "plants", category, search); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	plants, err := h.plants.ListPlants(c.Request.Context(), category, search)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]types.PlantResponse, 0, len(plants))
	for i := range plants {
		responses = append(responses, types.NewPlantResponse(&plants[i]))
	}

	body, err := json.Marshal(gin.H{"plants": responses})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.cache.Set(c.Request.Context(), "plants", category, search, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetPlant handles GET /plants/:id
func (h *PlantHandler) GetPlant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plant id"})
		return
	}

	plant, err := h.plants.GetPlant(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewPlantResponse(plant))
}

// CreatePlant handles POST /plants
func (h *PlantHandler) CreatePlant(c *gin.Context) {
	var req types.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plant, err := h.plants.CreatePlant(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "plants")
	c.JSON(http.StatusCreated, types.NewPlantResponse(plant))
}

// UpdatePlant handles PUT /plants/:id with PATCH semantics: absent fields
// are left untouched.
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plant id"})
		return
	}

	var req types.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plant, err := h.plants.UpdatePlant(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "plants")
	c.JSON(http.StatusOK, types.NewPlantResponse(plant))
}

// DeletePlant handles DELETE /plants/:id
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plant id"})
		return
	}

	if err := h.plants.DeletePlant(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "plants")
	c.JSON(http.StatusOK, gin.H{"message": "plant deleted"})
}

// UploadPlantImage handles POST /plants/:id/image: the uploaded file is
// stored in S3 and becomes the plant's primary image.
func (h *PlantHandler) UploadPlantImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plant id"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) > maxImageUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 5MB limit"})
		return
	}

	url, err := h.images.UploadPlantImage(c.Request.Context(), id, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	plant, err := h.plants.UpdatePlant(c.Request.Context(), id, &types.UpdatePlantRequest{Image: &url})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), "plants")
	c.JSON(http.StatusOK, types.NewPlantResponse(plant))
}
