package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/causeway/backend/api/transport"
	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/pkg/httpcontext"
	contactUC "github.com/causeway/backend/usecase/contact"
)

type ContactHandler struct {
	baseHandler
	uc *contactUC.UseCase
}

func NewContactHandler(uc *contactUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Submit a contact form message
// @Tags contact
// @Router /contact [post]
func (h *ContactHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.ContactRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Fail(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	message := &domain.ContactMessage{
		FullName: req.Name,
		Email:    req.Email,
		Website:  req.Website,
		Message:  req.Message,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stored, err := h.uc.Submit(stdCtx, message)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"message_id": stored.ID,
		"message":    "Thank you for your message! We will get back to you shortly.",
	})
}
