// Package httptransport is the thin HTTP layer over the classification
// service. Handlers delegate to the service without embedding business logic
// so transport concerns remain isolated.
package httptransport

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"archivum/internal/catalog"
	"archivum/internal/classify"
	dErrors "archivum/pkg/domain-errors"
	"archivum/pkg/platform/httputil"
	"archivum/pkg/platform/middleware/auth"
	"archivum/pkg/platform/sentinel"
)

// maxBatchItems bounds batch classification requests.
const maxBatchItems = 100

// Handler holds the dependencies of the HTTP layer.
type Handler struct {
	service *classify.Service
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(service *classify.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// NewRouter wires all endpoints. Read endpoints and classification require a
// valid token; register mutations additionally require the admin role.
func NewRouter(h *Handler, validator auth.Validator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.RequireAuth(validator, h.logger))

		r.Route("/records", func(r chi.Router) {
			r.Post("/", h.handleRegisterRecord)
			r.Get("/", h.handleListRecords)
			r.Post("/assess", h.handleAssessRecord)
			r.Post("/classify/batch", h.handleBatchClassify)
			r.Get("/{id}", h.handleGetRecord)
			r.Post("/{id}/classify", h.handleClassifyRecord)
			r.Get("/{id}/compliance", h.handleGetCompliance)

			r.With(auth.RequireRole(adminRole, h.logger)).Delete("/{id}", h.handleDeleteRecord)
		})

		r.Route("/hotspots", func(r chi.Router) {
			r.Get("/", h.handleListHotspots)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(adminRole, h.logger))
				r.Post("/", h.handleRegisterHotspot)
				r.Post("/{id}/close", h.handleCloseHotspot)
			})
		})
	})

	return r
}

const adminRole = "admin"

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// toDomainError classifies service errors for transport: sentinel and coded
// errors pass through, anything else from a validation path becomes a bad
// request.
func toDomainError(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrConflict) {
		return err
	}
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.Wrap(dErrors.CodeBadRequest, err.Error(), err)
}

func catalogCategory(value string) catalog.ProcessCategory {
	return catalog.ProcessCategory(value)
}

func catalogBody(value string) catalog.BodyKind {
	return catalog.BodyKind(value)
}

func queryInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
