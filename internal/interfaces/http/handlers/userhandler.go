package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/subscription/usecases"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

// UserHandler lets clients look up users to follow.
type UserHandler struct {
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(listUsersUC usecases.ListUsersExecutor, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUC: listUsersUC,
		logger:      logger,
	}
}

// ListUsers handles GET /users?search=&page=&page_size=
func (h *UserHandler) ListUsers(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		ActorID:  actorID,
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}
