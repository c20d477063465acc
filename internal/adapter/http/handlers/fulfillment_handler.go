package handlers

import (
	"net/http"

	request "gift_contribution/internal/adapter/http/dto/request"
	response "gift_contribution/internal/adapter/http/dto/response"
	"gift_contribution/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FulfillmentHandler exposes the staff order board.
type FulfillmentHandler struct {
	usecase usecase.IFulfillmentUseCase
	log     *zap.Logger
}

func NewFulfillmentHandler(uc usecase.IFulfillmentUseCase, log *zap.Logger) *FulfillmentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FulfillmentHandler{usecase: uc, log: log}
}

// ListOrders godoc
// @Summary      List fulfillment orders under a staff tab
// @Tags         orders
// @Produce      json
// @Param        tab  query     string  false  "Processing, Packing, DeliveryConfirmed or AllOrders"
// @Success      200  {array}   response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *FulfillmentHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListByTab(c.Request.Context(), c.Query("tab"))
	if err != nil {
		h.fail(c, "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get a fulfillment order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *FulfillmentHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateOrderStatus godoc
// @Summary      Move an order one step along the fulfillment flow
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                            false  "Staff member"
// @Param        id         path      string                            true   "Order ID"
// @Param        body       body      request.UpdateOrderStatusRequest  true   "Status change"
// @Success      200        {object}  response.OrderResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /orders/{id}/status [post]
func (h *FulfillmentHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ToInput(c.GetHeader(HeaderUserID)))
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *FulfillmentHandler) fail(c *gin.Context, id string, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[order][handler] request failed", zap.String("order_id", id), zap.Error(err))
	} else {
		h.log.Info("[order][handler] request rejected", zap.String("order_id", id), zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
