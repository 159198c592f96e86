package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/review/usecases"
	"litreview/internal/interfaces/http/handlers/common"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type ReviewHandler struct {
	createReviewUC     usecases.CreateReviewExecutor
	createFullReviewUC usecases.CreateFullReviewExecutor
	getOwnReviewUC     usecases.GetOwnReviewExecutor
	updateReviewUC     usecases.UpdateReviewExecutor
	deleteReviewUC     usecases.DeleteReviewExecutor
	logger             logger.Interface
}

func NewReviewHandler(
	createReviewUC usecases.CreateReviewExecutor,
	createFullReviewUC usecases.CreateFullReviewExecutor,
	getOwnReviewUC usecases.GetOwnReviewExecutor,
	updateReviewUC usecases.UpdateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUC:     createReviewUC,
		createFullReviewUC: createFullReviewUC,
		getOwnReviewUC:     getOwnReviewUC,
		updateReviewUC:     updateReviewUC,
		deleteReviewUC:     deleteReviewUC,
		logger:             logger,
	}
}

// CreateReview handles POST /reviews/tickets/:id/review
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create review", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.createReviewUC.Execute(c.Request.Context(), req.ToCreateCommand(actorID, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review created successfully")
}

// CreateFullReview handles POST /reviews/full
func (h *ReviewHandler) CreateFullReview(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req FullReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for full review", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	image, closeImage, err := common.ImageFromForm(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeImage()

	result, err := h.createFullReviewUC.Execute(c.Request.Context(), req.ToCommand(actorID, image))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review created successfully")
}

// GetOwnReview handles GET /reviews/reviews/:id/edit
func (h *ReviewHandler) GetOwnReview(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOwnReviewUC.Execute(c.Request.Context(), usecases.GetOwnReviewQuery{
		ActorID:  actorID,
		ReviewID: reviewID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateReview handles PUT /reviews/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for update review", "review_id", reviewID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.updateReviewUC.Execute(c.Request.Context(), req.ToUpdateCommand(actorID, reviewID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", result)
}

// DeleteReview handles DELETE /reviews/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReviewUC.Execute(c.Request.Context(), usecases.DeleteReviewCommand{
		ActorID:  actorID,
		ReviewID: reviewID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
