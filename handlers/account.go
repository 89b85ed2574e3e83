package handlers

import (
	"net/http"

	"hirafic/middleware"
	"hirafic/models"
	"hirafic/services/account"
	"hirafic/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes registration, login and profile endpoints.
type AccountHandler struct {
	Service account.AccountService
}

func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// RegisterHandler handles POST /register.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var input account.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// AuthenticateHandler handles POST /login.
func (h *AccountHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"role":         result.Role,
		"username":     result.User.Username,
		"email":        result.User.Email,
	})
}

// ClientProfileHandler handles GET and POST /client.
func (h *AccountHandler) ClientProfileHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}

	if c.Request.Method == http.MethodGet {
		user, err := h.Service.GetUserProfile(principal)
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}
	h.updateProfile(c, principal)
}

// ArtisanProfileHandler handles GET and POST /artisan.
func (h *AccountHandler) ArtisanProfileHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return
	}

	if c.Request.Method == http.MethodGet {
		artisan, err := h.Service.GetArtisanProfile(principal)
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}
		c.JSON(http.StatusOK, artisan)
		return
	}
	h.updateProfile(c, principal)
}

func (h *AccountHandler) updateProfile(c *gin.Context, principal models.Principal) {
	var input account.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid form data", err.Error())
		return
	}

	user, err := h.Service.UpdateProfile(c.Request.Context(), principal, input)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	if principal.IsArtisan() {
		artisan, err := h.Service.GetArtisanProfile(principal)
		if err == nil {
			c.JSON(http.StatusOK, artisan)
			return
		}
	}
	c.JSON(http.StatusOK, user)
}
