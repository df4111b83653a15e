package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Create payment intent
// @Description Create a provider order for the given amount in minor units
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Amount and currency"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentIntentRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.cmds.CreateIntent(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentOrder(order))
}

// @Summary Verify payment
// @Description Check the provider signature and mark the booking paid when one is given
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPaymentRequest true "Provider callback fields"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.VerifyPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Verify(c.Request.Context(), identity, req.ToInput()); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Payment verified successfully"})
}
