package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trailercraft/storefront/internal/catalog/application"
	"github.com/trailercraft/storefront/internal/catalog/domain"
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
		tracer:  otel.Tracer("catalog-http"),
	}
}

// Routes serves the public shop listing.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// AdminRoutes serves the back-office inventory CRUD.
func (h *Handler) AdminRoutes() http.Handler {
	r := chi.NewRouter()
	h.RegisterAdmin(r)
	return r
}

// Register attaches the public shop listing to r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/trucks", h.listAvailable)
	r.Get("/trucks/{id}", h.getTruck)
}

// RegisterAdmin attaches the inventory CRUD to r.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/trucks", h.listAll)
	r.Post("/trucks", h.createTruck)
	r.Get("/trucks/{id}", h.getTruck)
	r.Put("/trucks/{id}", h.updateTruck)
	r.Delete("/trucks/{id}", h.deleteTruck)
}

// truckPayload is the admin write shape. Monetary fields are dollars at this
// boundary and cents past it.
type truckPayload struct {
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Size            string          `json:"size"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	Price           *float64        `json:"price"`
	MonthlyEstimate *float64        `json:"monthlyEstimate"`
	Images          []string        `json:"images"`
	Features        json.RawMessage `json:"features"`
	Options         json.RawMessage `json:"options"`
	Available       *bool           `json:"available"`
}

func (p truckPayload) toDomain() domain.Truck {
	t := domain.Truck{
		Name:        p.Name,
		Slug:        p.Slug,
		Size:        p.Size,
		Type:        p.Type,
		Description: p.Description,
		Images:      p.Images,
		Features:    p.Features,
		Options:     p.Options,
		Available:   true,
	}
	if p.Price != nil {
		c := pricing.Cents(*p.Price)
		t.PriceCents = &c
	}
	if p.MonthlyEstimate != nil {
		c := pricing.Cents(*p.MonthlyEstimate)
		t.MonthlyEstimateCents = &c
	}
	if p.Available != nil {
		t.Available = *p.Available
	}
	return t
}

func (h *Handler) createTruck(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateTruck")
	defer span.End()

	var payload truckPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	t, err := h.service.Create(ctx, payload.toDomain())
	if err != nil {
		h.writeServiceError(w, err, "truck create failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"truck":   truckJSON(t),
	})
}

func (h *Handler) updateTruck(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateTruck")
	defer span.End()

	var payload truckPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	t := payload.toDomain()
	t.ID = chi.URLParam(r, "id")

	t, err := h.service.Update(ctx, t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "truck not found",
			})
			return
		}
		h.writeServiceError(w, err, "truck update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"truck":   truckJSON(t),
	})
}

func (h *Handler) getTruck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "truck not found",
			})
			return
		}
		h.log.Error("truck lookup failed", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "lookup failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"truck":   truckJSON(t),
	})
}

func (h *Handler) listAvailable(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListAvailable)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListAll)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]domain.Truck, error)) {
	trucks, err := fetch(r.Context())
	if err != nil {
		h.log.Error("truck list failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "list failed",
		})
		return
	}

	out := make([]map[string]any, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, truckJSON(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"trucks":  out,
	})
}

func (h *Handler) deleteTruck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "truck not found",
			})
			return
		}
		h.log.Error("truck delete failed", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "delete failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "validation failed",
			"details": verr.Fields,
		})
		return
	}
	h.log.Error(logMsg, "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   "operation failed",
	})
}

// truckJSON converts optional cents fields to float dollars for the client.
func truckJSON(t domain.Truck) map[string]any {
	var price, monthly any
	if t.PriceCents != nil {
		price = pricing.Dollars(*t.PriceCents)
	}
	if t.MonthlyEstimateCents != nil {
		monthly = pricing.Dollars(*t.MonthlyEstimateCents)
	}
	return map[string]any{
		"id":              t.ID,
		"name":            t.Name,
		"slug":            t.Slug,
		"size":            t.Size,
		"type":            t.Type,
		"description":     t.Description,
		"price":           price,
		"monthlyEstimate": monthly,
		"images":          t.Images,
		"features":        t.Features,
		"options":         t.Options,
		"available":       t.Available,
		"createdAt":       t.CreatedAt,
		"updatedAt":       t.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
