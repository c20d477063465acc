package handlers

import (
	"context"
	"net/http"
	"strings"

	request "gift_contribution/internal/adapter/http/dto/request"
	response "gift_contribution/internal/adapter/http/dto/response"
	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContributionHandler handles HTTP requests for group gift contributions.
type ContributionHandler struct {
	usecase  usecase.IContributionUseCase
	payments usecase.IPaymentRecorder
	log      *zap.Logger
}

func NewContributionHandler(uc usecase.IContributionUseCase, payments usecase.IPaymentRecorder, log *zap.Logger) *ContributionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContributionHandler{usecase: uc, payments: payments, log: log}
}

// CreateContribution godoc
// @Summary      Create a group gift contribution
// @Tags         gift
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                             true  "Creator email"
// @Param        body       body      request.CreateContributionRequest  true  "Contribution"
// @Success      201        {object}  response.ContributionResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /gift [post]
func (h *ContributionHandler) CreateContribution(c *gin.Context) {
	var payload request.CreateContributionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[gift][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.GetHeader(HeaderUserID)))
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContribution(created))
}

// GetContribution godoc
// @Summary      Get a contribution
// @Tags         gift
// @Produce      json
// @Param        id   path      string  true  "Contribution ID"
// @Success      200  {object}  response.ContributionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /gift/{id} [get]
func (h *ContributionHandler) GetContribution(c *gin.Context) {
	id := c.Param("id")
	found, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContribution(found))
}

// ListContributions godoc
// @Summary      List contributions created by the caller or shared with an email
// @Tags         gift
// @Produce      json
// @Param        X-User-ID  header    string  false  "Creator email"
// @Param        email      query     string  false  "Participant email"
// @Success      200        {array}   response.ContributionResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /gift [get]
func (h *ContributionHandler) ListContributions(c *gin.Context) {
	list, err := h.usecase.ListForUser(c.Request.Context(), c.GetHeader(HeaderUserID), c.Query("email"))
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContributions(list))
}

// MarkPaid godoc
// @Summary      Record a participant payment
// @Tags         gift
// @Accept       json
// @Produce      json
// @Param        id    path      string                              true  "Contribution ID"
// @Param        body  body      request.ParticipantResponseRequest  true  "Participant"
// @Success      200   {object}  response.ContributionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /gift/{id}/paid [post]
func (h *ContributionHandler) MarkPaid(c *gin.Context) {
	h.respond(c, "paid", h.payments.RecordPayment)
}

// Decline godoc
// @Summary      Record a participant decline
// @Tags         gift
// @Accept       json
// @Produce      json
// @Param        id    path      string                              true  "Contribution ID"
// @Param        body  body      request.ParticipantResponseRequest  true  "Participant"
// @Success      200   {object}  response.ContributionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /gift/{id}/decline [post]
func (h *ContributionHandler) Decline(c *gin.Context) {
	h.respond(c, "decline", h.payments.RecordDecline)
}

// CancelContribution godoc
// @Summary      Cancel an unfinished contribution
// @Tags         gift
// @Produce      json
// @Param        X-User-ID  header    string  false  "Actor"
// @Param        id         path      string  true   "Contribution ID"
// @Success      200        {object}  response.ContributionResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /gift/{id}/cancel [post]
func (h *ContributionHandler) CancelContribution(c *gin.Context) {
	id := c.Param("id")
	cancelled, err := h.usecase.Cancel(c.Request.Context(), id, c.GetHeader(HeaderUserID))
	if err != nil {
		h.fail(c, "cancel", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContribution(cancelled))
}

func (h *ContributionHandler) respond(
	c *gin.Context,
	action string,
	record func(ctx context.Context, contributionID, email string) (entities.Contribution, error),
) {
	id := c.Param("id")
	var payload request.ParticipantResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Email) == "" {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := record(c.Request.Context(), id, payload.Email)
	if err != nil {
		h.fail(c, action, id, err)
		return
	}
	h.log.Info("[gift][handler] participant response recorded",
		zap.String("action", action),
		zap.String("contribution_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)
	c.JSON(http.StatusOK, response.FromContribution(updated))
}

func (h *ContributionHandler) fail(c *gin.Context, action, id string, err error) {
	appErr := mapDomainError(err)
	fields := []zap.Field{zap.String("action", action), zap.String("contribution_id", id), zap.Error(err)}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[gift][handler] request failed", fields...)
	} else {
		h.log.Info("[gift][handler] request rejected", append(fields, zap.String("code", appErr.Code))...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
