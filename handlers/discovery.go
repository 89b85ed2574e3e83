package handlers

import (
	"net/http"

	artisanRepo "hirafic/database/repository/artisan"
	"hirafic/middleware"
	"hirafic/models"
	"hirafic/services/account"
	"hirafic/services/discovery"
	"hirafic/utils"

	"github.com/gin-gonic/gin"
)

// DiscoveryHandler exposes the provider discovery endpoints.
type DiscoveryHandler struct {
	Service discovery.DiscoveryService
	Account account.AccountService
}

func NewDiscoveryHandler(svc discovery.DiscoveryService, accountSvc account.AccountService) *DiscoveryHandler {
	return &DiscoveryHandler{Service: svc, Account: accountSvc}
}

func bindPageRequest(c *gin.Context) (models.PageRequest, bool) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid pagination parameters", err.Error())
		return page, false
	}
	return page, true
}

// ListArtisansHandler handles GET /all_artisans.
func (h *DiscoveryHandler) ListArtisansHandler(c *gin.Context) {
	page, ok := bindPageRequest(c)
	if !ok {
		return
	}
	filter := artisanRepo.SearchFilter{
		Specialization: c.Query("specialization"),
	}

	result, err := h.Service.ListArtisans(c.Request.Context(), filter, page)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artisans":     result.Items,
		"current_page": result.CurrentPage,
		"total_pages":  result.TotalPages,
	})
}

// NearbyArtisansHandler handles POST /nearby_artisans. The origin
// defaults to the authenticated client's stored geocoded location when
// the body does not carry coordinates.
func (h *DiscoveryHandler) NearbyArtisansHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}
	page, ok := bindPageRequest(c)
	if !ok {
		return
	}

	var input struct {
		Distance       float64  `json:"distance"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
		Specialization string   `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var originLat, originLon float64
	if input.Latitude != nil && input.Longitude != nil {
		originLat, originLon = *input.Latitude, *input.Longitude
	} else {
		user, err := h.Account.GetUserProfile(principal)
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}
		if user.Latitude == 0 && user.Longitude == 0 {
			utils.JSONError(c, http.StatusBadRequest, "client location is not set", "update your profile location first")
			return
		}
		originLat, originLon = user.Latitude, user.Longitude
	}

	filter := artisanRepo.SearchFilter{Specialization: input.Specialization}
	result, err := h.Service.ListNearbyArtisans(c.Request.Context(), originLat, originLon, input.Distance, filter, page)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artisans":     result.Items,
		"current_page": result.CurrentPage,
		"total_pages":  result.TotalPages,
	})
}
