package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trailercraft/storefront/internal/order/application"
	"github.com/trailercraft/storefront/internal/order/domain"
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
		tracer:  otel.Tracer("order-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// AdminRoutes exposes the back-office order views.
func (h *Handler) AdminRoutes() http.Handler {
	r := chi.NewRouter()
	h.RegisterAdmin(r)
	return r
}

// Register attaches the public order routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.submitOrder)
	r.Get("/orders/{number}", h.getOrder)
}

// RegisterAdmin attaches the back-office order views to r.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{number}", h.getOrder)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SubmitOrder")
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
		// Persistence failure: generic message out, cause stays in the log.
		h.log.Error("order submission failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "could not place order, please try again",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"orderNumber": res.OrderNumber,
		"message":     "order placed",
		"emailsSent":  res.EmailsSent,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	o, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "order not found",
			})
			return
		}
		h.log.Error("order lookup failed", "number", number, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "lookup failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   orderJSON(o),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	orders, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.log.Error("order list failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "list failed",
		})
		return
	}

	out := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderJSON(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  out,
	})
}

// orderJSON converts cents to dollars at the presentation boundary.
func orderJSON(o domain.Order) map[string]any {
	upgrades := make([]map[string]any, 0, len(o.Upgrades))
	for _, u := range o.Upgrades {
		upgrades = append(upgrades, map[string]any{
			"id":    u.ID,
			"name":  u.Name,
			"price": pricing.Dollars(u.PriceCents),
		})
	}
	return map[string]any{
		"orderNumber":   o.Number,
		"firstName":     o.FirstName,
		"lastName":      o.LastName,
		"email":         o.Email,
		"phone":         o.Phone,
		"address":       o.Address,
		"city":          o.City,
		"state":         o.State,
		"zipCode":       o.ZipCode,
		"truckName":     o.TruckName,
		"truckSize":     o.TruckSize,
		"truckType":     o.TruckType,
		"truckImage":    o.TruckImage,
		"truckImages":   o.TruckImages,
		"upgrades":      upgrades,
		"price":         pricing.Dollars(o.PriceCents),
		"total":         pricing.Dollars(o.TotalCents),
		"paymentMethod": o.PaymentMethod,
		"paymentStatus": string(o.PaymentStatus),
		"status":        string(o.Status),
		"createdAt":     o.CreatedAt,
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
