package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/causeway/backend/api/transport"
	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/pkg/httpcontext"
	newsUC "github.com/causeway/backend/usecase/news"
)

type NewsHandler struct {
	baseHandler
	uc *newsUC.UseCase
}

func NewNewsHandler(uc *newsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List news articles
// @Tags news
// @Router /api/v1/news [get]
func (h *NewsHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	articles, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, articles)
}

// @Summary Publish a news article
// @Tags news
// @Router /api/v1/news [post]
func (h *NewsHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.NewsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Fail(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	article := &domain.Article{
		Title:     req.Title,
		Content:   req.Content,
		ImagePath: req.ImagePath,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	published, err := h.uc.Publish(stdCtx, article)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, published)
}
