package api

import (
	"net/http"

	reqdto "scrap-market/internal/handler/dto/request"
	resdto "scrap-market/internal/handler/dto/response"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Register
// @Description Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult("User registered successfully", result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult("Login successful", result))
}

// @Summary Verify token
// @Description Resolve the bearer token into its subject
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.VerifyResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubject(subject))
}

// @Summary Refresh token
// @Description Re-issue a token with a fresh expiry
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	subject, ok := currentSubject(c)
	if !ok {
		return
	}

	result, err := h.authCommands.Refresh(c.Request.Context(), subject)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult("Token refreshed successfully", result))
}
