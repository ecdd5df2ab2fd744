package httptransport

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"archivum/internal/classify"
	"archivum/internal/record"
	dErrors "archivum/pkg/domain-errors"
	"archivum/pkg/platform/httputil"
	"archivum/pkg/platform/middleware/auth"
)

func (h *Handler) handleRegisterRecord(w http.ResponseWriter, r *http.Request) {
	var req registerRecordRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	rec, err := req.toDomain()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	saved, err := h.service.Register(ctx, rec)
	if err != nil {
		h.logger.WarnContext(ctx, "record registration failed", "error", err)
		httputil.WriteError(w, toDomainError(err))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	filter := record.ListFilter{}
	query := r.URL.Query()
	if c := query.Get("category"); c != "" {
		filter.Category = catalogCategory(c)
	}
	if b := query.Get("body"); b != "" {
		filter.Body = catalogBody(b)
	}
	filter.Limit = queryInt(query.Get("limit"))

	records, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "record listing failed", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list records"))
		return
	}
	if records == nil {
		records = []record.Record{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (h *Handler) handleClassifyRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req classifyRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	outcome, err := h.service.Classify(ctx, id, req.Signals.toDomain())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

func (h *Handler) handleAssessRecord(w http.ResponseWriter, r *http.Request) {
	var req registerRecordRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	rec, err := req.toDomain()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome, err := h.service.Preview(r.Context(), rec, req.Signals.toDomain())
	if err != nil {
		httputil.WriteError(w, toDomainError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

func (h *Handler) handleBatchClassify(w http.ResponseWriter, r *http.Request) {
	var req batchClassifyRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if len(req.Items) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "batch requires at least one item"))
		return
	}
	if len(req.Items) > maxBatchItems {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "batch exceeds maximum size"))
		return
	}

	items := make([]classify.BatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.RecordID)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid record_id in batch"))
			return
		}
		items = append(items, classify.BatchItem{RecordID: id, Signals: item.Signals.toDomain()})
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	results, err := h.service.ClassifyBatch(ctx, items)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch classification aborted", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "batch classification failed"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handler) handleGetCompliance(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	status, err := h.service.Compliance(r.Context(), id)
	if err != nil {
		if errors.Is(err, classify.ErrNotAssessed) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "record has not been assessed"))
			return
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx := classify.WithActor(r.Context(), auth.GetSubject(r.Context()))
	if err := h.service.Delete(ctx, id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func recordID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid record id")
	}
	return id, nil
}
