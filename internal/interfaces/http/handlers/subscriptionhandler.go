package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/subscription/usecases"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type SubscriptionHandler struct {
	applyUC usecases.ApplySubscriptionExecutor
	listUC  usecases.ListSubscriptionsExecutor
	logger  logger.Interface
}

func NewSubscriptionHandler(
	applyUC usecases.ApplySubscriptionExecutor,
	listUC usecases.ListSubscriptionsExecutor,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		applyUC: applyUC,
		listUC:  listUC,
		logger:  logger,
	}
}

// SubscriptionRequest names the target by user_id or, failing that, by
// username.
type SubscriptionRequest struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Action   string `json:"action" binding:"required"`
}

// ListSubscriptions handles GET /reviews/subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSubscriptionsQuery{ActorID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApplySubscription handles POST /reviews/subscriptions. The body always
// carries the outcome, including for rejected requests.
func (h *SubscriptionHandler) ApplySubscription(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	outcome, err := h.applyUC.Execute(c.Request.Context(), usecases.ApplySubscriptionCommand{
		ActorID:        actorID,
		TargetUserID:   req.UserID,
		TargetUsername: req.Username,
		Action:         usecases.Action(req.Action),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	failure := outcome.Failure
	if !outcome.Success && failure == nil {
		h.logger.Errorw("subscription outcome without failure", "status", outcome.Status)
		failure = fmt.Errorf("unclassified outcome %s", outcome.Status)
	}

	utils.OutcomeResponse(c, string(outcome.Status), outcome, outcome.Message, failure)
}
