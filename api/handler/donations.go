package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/causeway/backend/api/transport"
	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/pkg/httpcontext"
	donationUC "github.com/causeway/backend/usecase/donation"
)

type DonationHandler struct {
	baseHandler
	uc *donationUC.UseCase
}

func NewDonationHandler(uc *donationUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Record a donation pledge
// @Tags donations
// @Router /donate [post]
func (h *DonationHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.DonationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Fail(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	donation := &domain.Donation{
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		AmountCents: req.Amount,
		Message:     req.Message,
		CauseID:     req.CauseID,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	recorded, err := h.uc.Record(stdCtx, donation)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusCreated, map[string]interface{}{
		"donation_id": recorded.ID,
		"message":     "Thank you for your generous donation! We will contact you soon for payment details.",
	})
}

// @Summary List recent donations
// @Tags donations
// @Router /api/v1/donations [get]
func (h *DonationHandler) List(ctx *fasthttp.RequestCtx) {
	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), 50)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	donations, err := h.uc.ListRecent(stdCtx, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, donations)
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
