package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abok-cymk/ai-democratizer/domain"
	"github.com/abok-cymk/ai-democratizer/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=20,username_chars"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Password  string `json:"password" binding:"required,min=8,password_complexity"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, translateValidation(err, registerMessages))
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": result})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, translateValidation(err, loginMessages))
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Me returns the authenticated principal.
func (h *AuthHandlers) Me(c *gin.Context) {
	user, err := middleware.RequireAuth(middleware.RequestContextFrom(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// Logout handles user logout. Tokens expire intrinsically; this is an audit
// event and a signal for the client to drop its cached token.
func (h *AuthHandlers) Logout(c *gin.Context) {
	user, err := middleware.RequireAuth(middleware.RequestContextFrom(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.authSvc.Logout(c.Request.Context(), user)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out successfully"}})
}
