package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oa-project/office-backend-go/internal/domain/inform"
	"github.com/oa-project/office-backend-go/internal/handler/http/middleware"
	"github.com/oa-project/office-backend-go/internal/handler/http/response"
)

type InformHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type InformHandlerImpl struct {
	informService inform.InformService
}

func NewInformHandler(informService inform.InformService) InformHandler {
	return &InformHandlerImpl{informService: informService}
}

// Create implements InformHandler.
func (h *InformHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req inform.CreateInformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateInform decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.informService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement published", created)
}

// List implements InformHandler.
func (h *InformHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	announcements, err := h.informService.ListVisible(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// Delete implements InformHandler.
func (h *InformHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	informID := chi.URLParam(r, "id")
	if informID == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := h.informService.Delete(r.Context(), caller, informID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

// MarkRead implements InformHandler.
func (h *InformHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	informID := chi.URLParam(r, "id")
	if informID == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := h.informService.MarkRead(r.Context(), caller, informID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked as read", nil)
}
