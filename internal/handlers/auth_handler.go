package handlers

import (
	"errors"
	"net/http"

	"gitfora-core/internal/auth"
	"gitfora-core/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves local account registration and login. The analytics
// endpoints themselves are unauthenticated; these routes only mint tokens.
type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenIssuer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(st *store.Store, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens}
}

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the body returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register handles POST /api/auth/register
// @Summary Register a local account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account credentials"
// @Success 201 {object} models.Account
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "username and password are required",
			Details: err.Error(),
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create account",
		})
		return
	}

	account, err := h.store.CreateAccount(req.Username, hash)
	if err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "username_taken",
				Message: "Username is already taken",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create account",
		})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Login handles POST /api/auth/login
// @Summary Log in to a local account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Account credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "username and password are required",
			Details: err.Error(),
		})
		return
	}

	account, ok := h.store.AccountByUsername(req.Username)
	if !ok || auth.CheckPassword(account.PasswordHash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username or password",
		})
		return
	}

	token, expiresIn, err := h.tokens.Issue(account.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
