package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/user/usecases"
	"litreview/internal/shared/config"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type AuthHandler struct {
	signUpUC         usecases.SignUpExecutor
	signInUC         usecases.SignInExecutor
	signOutUC        usecases.SignOutExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	getProfileUC     usecases.GetProfileExecutor
	cookieConfig     config.CookieConfig
	logger           logger.Interface
}

func NewAuthHandler(
	signUpUC usecases.SignUpExecutor,
	signInUC usecases.SignInExecutor,
	signOutUC usecases.SignOutExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	getProfileUC usecases.GetProfileExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signUpUC:         signUpUC,
		signInUC:         signInUC,
		signOutUC:        signOutUC,
		changePasswordUC: changePasswordUC,
		getProfileUC:     getProfileUC,
		cookieConfig:     cookieConfig,
		logger:           logger,
	}
}

type SignUpRequest struct {
	Username        string `json:"username" binding:"required,max=150"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

type SignInRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.signUpUC.Execute(c.Request.Context(), usecases.SignUpCommand{
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "registration successful")
}

// SignIn handles POST /auth/signin. The token is set as an HttpOnly cookie
// and also returned for non-browser clients.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.signInUC.Execute(c.Request.Context(), usecases.SignInCommand{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "sign in successful", result)
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.signOutUC.Execute(c.Request.Context(), usecases.SignOutCommand{
		ActorID:   actorID,
		SessionID: utils.GetSessionID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "signed out", nil)
}

// ChangePassword handles POST /auth/password. Every other session of the
// actor is revoked; the current one stays valid.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		ActorID:            actorID,
		SessionID:          utils.GetSessionID(c),
		OldPassword:        req.OldPassword,
		NewPassword:        req.NewPassword,
		NewPasswordConfirm: req.NewPasswordConfirm,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("password changed", "user_id", actorID)
	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{ActorID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
