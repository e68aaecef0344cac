package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trailercraft/storefront/internal/design/application"
	"github.com/trailercraft/storefront/internal/design/domain"
	"github.com/trailercraft/storefront/internal/pricing"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("design-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// AdminRoutes exposes build-request management for the back office.
func (h *Handler) AdminRoutes() http.Handler {
	r := chi.NewRouter()
	h.RegisterAdmin(r)
	return r
}

// Register attaches the public design routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/design-requests", h.submitDesignRequest)
	r.Post("/configurations", h.saveDraft)
	r.Get("/configurations", h.getDraft)
}

// RegisterAdmin attaches build-request management to r.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/build-requests", h.listBuildRequests)
	r.Put("/build-requests/{id}/status", h.updateStatus)
}

func (h *Handler) submitDesignRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SubmitDesignRequest")
	defer span.End()

	var req application.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	res, err := h.service.Submit(ctx, req)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   "validation failed",
				"details": verr.Fields,
			})
			return
		}
		h.log.Error("design request submission failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "could not submit request, please try again",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"message":   "design request received",
		"emailSent": res.EmailSent,
	})
}

// saveDraft acknowledges an arbitrary configuration blob. Drafts live in the
// client's local storage; the server side is a deliberate no-op kept for
// wire compatibility.
func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	var blob map[string]any
	if err := json.NewDecoder(r.Body).Decode(&blob); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "configuration received",
	})
}

// getDraft always returns a null configuration; see saveDraft.
func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "id is required",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"configuration": nil,
	})
}

func (h *Handler) listBuildRequests(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	requests, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.log.Error("build request list failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "list failed",
		})
		return
	}

	out := make([]map[string]any, 0, len(requests))
	for _, br := range requests {
		out = append(out, buildRequestJSON(br))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"buildRequests": out,
	})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, domain.Status(body.Status)); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func buildRequestJSON(br domain.BuildRequest) map[string]any {
	return map[string]any{
		"id":                    br.ID,
		"firstName":             br.FirstName,
		"lastName":              br.LastName,
		"email":                 br.Email,
		"phoneNumber":           br.PhoneNumber,
		"zipcode":               br.ZipCode,
		"paymentMethods":        br.PaymentMethods,
		"trailerSize":           br.TrailerSize,
		"rangeHood":             br.RangeHood,
		"fireSuppressionSystem": br.FireSuppression,
		"exteriorColor":         br.ExteriorColor,
		"interiorFinish":        br.InteriorFinish,
		"budget":                br.Budget,
		"needFinancing":         br.NeedFinancing,
		"refrigeration":         br.Refrigeration,
		"equipment":             br.Equipment,
		"totalPrice":            pricing.Dollars(br.TotalPriceCents),
		"additionalInfo":        br.AdditionalInfo,
		"status":                string(br.Status),
		"createdAt":             br.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
