package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"la-carta/internal/broadcast"
	"la-carta/internal/clock"
	"la-carta/internal/config"
	"la-carta/internal/logger"
	"la-carta/internal/report"
	"la-carta/internal/service"
	"la-carta/internal/store"
	"la-carta/internal/validation"
	"la-carta/pkg/models"
)

// Handler wires the HTTP surface to the services. All error mapping to
// status codes happens here; nothing propagates past a request handler.
type Handler struct {
	orders    *service.OrderService
	menu      *service.MenuService
	history   *store.HistoryLog
	hub       *broadcast.Hub
	reportDir string
	clock     clock.Clock
	admin     config.Credentials
	cook      config.Credentials
	zaplog    *zap.Logger
}

func New(orders *service.OrderService, menu *service.MenuService, history *store.HistoryLog,
	hub *broadcast.Hub, reportDir string, clk clock.Clock,
	admin, cook config.Credentials, zaplog *zap.Logger) *Handler {
	return &Handler{
		orders:    orders,
		menu:      menu,
		history:   history,
		hub:       hub,
		reportDir: reportDir,
		clock:     clk,
		admin:     admin,
		cook:      cook,
		zaplog:    zaplog,
	}
}

// Router builds the route table with role gating and request logging.
func (h *Handler) Router() http.Handler {
	adminOnly := requireRole(h.admin)
	cookOnly := requireRole(h.cook)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu", h.listMenu)
	mux.HandleFunc("POST /menu", adminOnly(h.createMenuItem))
	mux.HandleFunc("PUT /menu/{id}", adminOnly(h.updateMenuItem))
	mux.HandleFunc("DELETE /menu/{id}", adminOnly(h.deleteMenuItem))
	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("POST /order", h.createOrder)
	mux.HandleFunc("PUT /order/{id}", cookOnly(h.updateOrderStatus))
	mux.HandleFunc("GET /report", h.downloadReport)
	mux.HandleFunc("GET /history", adminOnly(h.getHistory))
	mux.HandleFunc("GET /events", h.streamEvents)

	return logger.RequestLog(mux, h.zaplog)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.menu.List())
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidBody, "failed to parse JSON")
		return
	}

	item, err := h.menu.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrMissingRequiredField) {
			respondError(w, http.StatusBadRequest, codeMissingFields, err.Error())
			return
		}
		h.zaplog.Error("menu create failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to save menu")
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, codeMenuItemNotFound, "menu item not found")
		return
	}

	var patch models.MenuItemPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidBody, "failed to parse JSON")
		return
	}

	item, err := h.menu.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrMenuItemNotFound) {
			respondError(w, http.StatusNotFound, codeMenuItemNotFound, "menu item not found")
			return
		}
		h.zaplog.Error("menu update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to save menu")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		// catalog ids are numeric, so this id cannot match a record;
		// answer 204 without a rewrite or broadcast
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.menu.Delete(id); err != nil {
		h.zaplog.Error("menu delete failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to save menu")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.ListActive())
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// a non-array items field lands here
		respondError(w, http.StatusBadRequest, codeInvalidOrder, "invalid order format")
		return
	}

	order, err := h.orders.Submit(req)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidOrderShape) {
			respondError(w, http.StatusBadRequest, codeInvalidOrder, "invalid order format")
			return
		}
		h.zaplog.Error("order submit failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to accept order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidBody, "failed to parse JSON")
		return
	}

	order, err := h.orders.UpdateStatus(r.PathValue("id"), req.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, codeOrderNotFound, "order not found")
			return
		}
		h.zaplog.Error("status update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to update order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) downloadReport(w http.ResponseWriter, r *http.Request) {
	path := report.Filename(h.reportDir, h.clock.Now())
	if _, err := os.Stat(path); err != nil {
		respondError(w, http.StatusNotFound, codeReportNotFound, "no report for today")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.history.Records())
}
