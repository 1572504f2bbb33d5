package service

import (
	"strings"

	"go.uber.org/zap"

	"la-carta/internal/broadcast"
	"la-carta/internal/clock"
	"la-carta/internal/store"
	"la-carta/internal/validation"
	"la-carta/pkg/models"
)

// drinkMarker flags low-priority orders: a table that ordered drinks can
// wait, the kitchen triages food first.
const drinkMarker = "drink"

// OrderService owns the order lifecycle: intake with derived fields,
// status transitions and the active listing.
type OrderService struct {
	store     *store.OrderStore
	validator *validation.OrderValidator
	publisher broadcast.Publisher
	clock     clock.Clock
	zaplog    *zap.Logger
}

func NewOrderService(st *store.OrderStore, pub broadcast.Publisher, clk clock.Clock, zaplog *zap.Logger) *OrderService {
	return &OrderService{
		store:     st,
		validator: validation.NewOrderValidator(),
		publisher: pub,
		clock:     clk,
		zaplog:    zaplog,
	}
}

// Submit validates the request, derives id, status, priority and arrival
// time, inserts the order at the front of the store and announces it to
// connected viewers. Nothing is persisted: orders live in memory until the
// archive cycle drains them.
func (s *OrderService) Submit(req models.CreateOrderRequest) (models.Order, error) {
	if err := s.validator.Validate(req.Items); err != nil {
		return models.Order{}, err
	}

	table := req.Table
	if table == "" {
		table = "0"
	}

	order := s.store.Add(models.Order{
		Table:       table,
		Items:       req.Items,
		Status:      models.StatusPreparing,
		Priority:    priorityFor(req.Items),
		ArrivalTime: s.clock.Now().Format("15:04"),
	})

	s.zaplog.Info("order received",
		zap.String("action", "order_created"),
		zap.String("order_id", order.ID),
		zap.String("table", order.Table),
		zap.String("priority", order.Priority),
	)

	s.publisher.Publish(broadcast.EventOrderCreated, order)
	return order, nil
}

// UpdateStatus overwrites the status of an active order. The status value
// is a free string on purpose: the displays send whatever stage label they
// use, and tightening it here would reject existing clients.
func (s *OrderService) UpdateStatus(id, status string) (models.Order, error) {
	order, err := s.store.UpdateStatus(id, status)
	if err != nil {
		return models.Order{}, err
	}

	s.zaplog.Info("order status changed",
		zap.String("action", "order_status_changed"),
		zap.String("order_id", id),
		zap.String("status", status),
	)

	s.publisher.Publish(broadcast.EventOrderStatusChanged, models.OrderStatusEvent{ID: id, Status: status})
	return order, nil
}

// ListActive returns the current orders, newest first.
func (s *OrderService) ListActive() []models.Order {
	return s.store.List()
}

func priorityFor(items []models.OrderItem) string {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), drinkMarker) {
			return models.PriorityLow
		}
	}
	return models.PriorityHigh
}
