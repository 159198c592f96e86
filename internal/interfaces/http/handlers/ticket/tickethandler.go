package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litreview/internal/application/ticket/usecases"
	"litreview/internal/interfaces/http/handlers/common"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	getOwnTicketUC usecases.GetOwnTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	getOwnTicketUC usecases.GetOwnTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		getOwnTicketUC: getOwnTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /reviews/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actorID, err := utils.GetActorID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	image, closeImage, err := common.ImageFromForm(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeImage()

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCreateCommand(actorID, image))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /reviews/tickets/:id. Any signed-in user may read a
// ticket in order to respond to it.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOwnTicket handles GET /reviews/tickets/:id/edit
func (h *TicketHandler) GetOwnTicket(c *gin.Context) {
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

	result, err := h.getOwnTicketUC.Execute(c.Request.Context(), usecases.GetOwnTicketQuery{
		ActorID:  actorID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /reviews/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
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

	var req UpdateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	image, closeImage, err := common.ImageFromForm(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeImage()

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(actorID, ticketID, image))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /reviews/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
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

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		ActorID:  actorID,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
