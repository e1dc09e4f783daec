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
	causeUC "github.com/causeway/backend/usecase/cause"
)

type CauseHandler struct {
	baseHandler
	uc *causeUC.UseCase
}

func NewCauseHandler(uc *causeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CauseHandler {
	return &CauseHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List causes
// @Tags causes
// @Router /api/v1/causes [get]
func (h *CauseHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	causes, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, causes)
}

// @Summary Get one cause
// @Tags causes
// @Router /api/v1/causes/{id} [get]
func (h *CauseHandler) Get(ctx *fasthttp.RequestCtx) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Fail(string(domain.ErrCodeInvalid), "invalid cause id"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cause, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, cause)
}

// @Summary Create a cause
// @Tags causes
// @Router /api/v1/causes [post]
func (h *CauseHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CauseRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Fail(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	cause := &domain.Cause{
		Title:       req.Title,
		ImagePath:   req.ImagePath,
		Location:    req.Location,
		Tags:        req.Tags,
		FundingGoal: req.FundingGoal,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, cause)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}
