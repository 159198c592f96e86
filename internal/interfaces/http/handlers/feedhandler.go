package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/feed/usecases"
	"litreview/internal/shared/constants"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type FeedHandler struct {
	getFeedUC usecases.GetFeedExecutor
	logger    logger.Interface
}

func NewFeedHandler(getFeedUC usecases.GetFeedExecutor, logger logger.Interface) *FeedHandler {
	return &FeedHandler{
		getFeedUC: getFeedUC,
		logger:    logger,
	}
}

// Feeds handles GET /reviews/feeds: the actor's posts and those of every
// followed user.
func (h *FeedHandler) Feeds(c *gin.Context) {
	h.serve(c, usecases.ScopeFeeds)
}

// Posts handles GET /reviews/posts: the actor's own tickets and reviews.
func (h *FeedHandler) Posts(c *gin.Context) {
	h.serve(c, usecases.ScopePosts)
}

func (h *FeedHandler) serve(c *gin.Context, scope usecases.Scope) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Out-of-range values are clamped by the use case; a missing or
	// malformed page means the first one.
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	pageNumber, ok := utils.ParseRawPage(c)
	if !ok {
		pageNumber = constants.DefaultPage
	}

	page, err := h.getFeedUC.Execute(c.Request.Context(), usecases.GetFeedQuery{
		ActorID:  actorID,
		Scope:    scope,
		Page:     pageNumber,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", page)
}
