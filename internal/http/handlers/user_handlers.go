package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abok-cymk/ai-democratizer/domain"
	"github.com/abok-cymk/ai-democratizer/internal/http/middleware"
)

// UserHandlers handles user profile HTTP requests
type UserHandlers struct {
	userRepo domain.UserRepository
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userRepo domain.UserRepository) *UserHandlers {
	return &UserHandlers{userRepo: userRepo}
}

// UpdateProfileRequest carries the self-service profile fields. Pointers
// distinguish "absent" from "set to empty".
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	Avatar    *string `json:"avatar" binding:"omitempty,max=512"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location" binding:"omitempty,max=128"`
	Website   *string `json:"website" binding:"omitempty,max=255"`
	Theme     *string `json:"theme" binding:"omitempty,max=32"`
	Language  *string `json:"language" binding:"omitempty,max=16"`
}

// UpdateRoleRequest carries a role change.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateStatusRequest carries an account activation change.
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// Get returns a user's public profile by id.
func (h *UserHandlers) Get(c *gin.Context) {
	user, err := h.userRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateMe updates the authenticated user's own profile.
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	user, err := middleware.RequireAuth(middleware.RequestContextFrom(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, translateValidation(err, profileMessages))
		return
	}

	fields := map[string]any{}
	setStr := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setStr("first_name", req.FirstName)
	setStr("last_name", req.LastName)
	setStr("avatar", req.Avatar)
	setStr("bio", req.Bio)
	setStr("location", req.Location)
	setStr("website", req.Website)
	setStr("theme", req.Theme)
	setStr("language", req.Language)

	if len(fields) == 0 {
		middleware.AbortWithError(c, domain.NewValidation("No profile fields to update"))
		return
	}

	updated, err := h.userRepo.UpdateProfile(c.Request.Context(), user.ID, fields)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// UpdateRole changes a user's role. Super-administrators only.
func (h *UserHandlers) UpdateRole(c *gin.Context) {
	if _, err := middleware.RequireRole(middleware.RequestContextFrom(c), domain.RoleSuperAdmin); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, domain.NewValidation("Invalid request body"))
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		middleware.AbortWithError(c, domain.NewValidation("Unknown role: "+req.Role))
		return
	}

	updated, err := h.userRepo.UpdateRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// UpdateStatus activates or deactivates an account. The owner may change
// their own status; administrators may change anyone's.
func (h *UserHandlers) UpdateStatus(c *gin.Context) {
	targetID := c.Param("id")
	if _, err := middleware.RequireOwnershipOrRole(middleware.RequestContextFrom(c), targetID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		middleware.AbortWithError(c, domain.NewValidation("isActive is required"))
		return
	}

	updated, err := h.userRepo.SetActive(c.Request.Context(), targetID, *req.IsActive)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}
