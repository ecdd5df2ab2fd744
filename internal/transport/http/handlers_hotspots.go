package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"archivum/internal/classify"
	dErrors "archivum/pkg/domain-errors"
	"archivum/pkg/platform/httputil"
	"archivum/pkg/platform/middleware/auth"
)

func (h *Handler) handleRegisterHotspot(w http.ResponseWriter, r *http.Request) {
	var req registerHotspotRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	hs, err := req.toDomain()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	if err := h.service.RegisterHotspot(ctx, hs); err != nil {
		httputil.WriteError(w, toDomainError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, hs)
}

func (h *Handler) handleListHotspots(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"hotspots": h.service.Hotspots(r.Context()),
	})
}

func (h *Handler) handleCloseHotspot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing hotspot id"))
		return
	}

	var req closeHotspotRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	end, err := parseDate(req.End)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid end date"))
		return
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	if err := h.service.CloseHotspot(ctx, id, end); err != nil {
		httputil.WriteError(w, toDomainError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
