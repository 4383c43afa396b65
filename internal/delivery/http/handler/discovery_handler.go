package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// Discover handles GET /discover
// @Summary Browse profiles
// @Description Filtered, categorized profile list for the active tab
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param tab query string false "Active tab: gay, lesbian or other"
// @Param age_min query int false "Minimum age (inclusive)"
// @Param age_max query int false "Maximum age (inclusive)"
// @Param purposes query string false "Comma-separated relationship purposes"
// @Param age_ranges query string false "Comma-separated age-range labels"
// @Param regions query string false "Comma-separated region labels"
// @Param orientations query string false "Comma-separated orientation labels"
// @Param liked_only query bool false "Only previously liked profiles"
// @Param include_self query bool false "Prepend own profile"
// @Success 200 {object} discovery.DiscoverResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discover [get]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	filters := parseFilters(c)
	bucket := domain.ParseBucket(c.DefaultQuery("tab", "other"))
	includeSelf := c.Query("include_self") == "true"

	result, err := h.discoveryUseCase.Discover(c.Request.Context(), userID.(string), filters, bucket, includeSelf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load discovery list",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseFilters(c *gin.Context) domain.MatchFilters {
	filters := domain.DefaultMatchFilters()

	if v, err := strconv.Atoi(c.Query("age_min")); err == nil {
		filters.AgeMin = v
	}
	if v, err := strconv.Atoi(c.Query("age_max")); err == nil {
		filters.AgeMax = v
	}
	if v, err := strconv.Atoi(c.Query("max_distance_km")); err == nil {
		filters.MaxDistanceKm = v
	}

	filters.Purposes = splitParam(c.Query("purposes"))
	filters.AgeRanges = splitParam(c.Query("age_ranges"))
	filters.Regions = splitParam(c.Query("regions"))
	filters.Orientations = splitParam(c.Query("orientations"))
	filters.LikedOnly = c.Query("liked_only") == "true"

	return filters
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
