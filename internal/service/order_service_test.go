package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"la-carta/internal/broadcast"
	"la-carta/internal/clock"
	"la-carta/internal/store"
	"la-carta/internal/validation"
	"la-carta/pkg/models"
)

// recordingPublisher captures broadcast events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []broadcast.Message
}

func (p *recordingPublisher) Publish(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, broadcast.Message{Event: event, Payload: payload})
}

func (p *recordingPublisher) all() []broadcast.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broadcast.Message(nil), p.events...)
}

var lunchtime = time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC)

func newOrderService(t *testing.T) (*OrderService, *store.OrderStore, *recordingPublisher) {
	t.Helper()
	st := store.NewOrderStore()
	pub := &recordingPublisher{}
	svc := NewOrderService(st, pub, clock.NewFixed(lunchtime), zap.NewNop())
	return svc, st, pub
}

func item(name string) models.OrderItem {
	return models.OrderItem{Name: name, PriceLocal: 5000, PriceForeign: 1.5, Quantity: 1}
}

func TestSubmitDerivedFields(t *testing.T) {
	svc, _, pub := newOrderService(t)

	order, err := svc.Submit(models.CreateOrderRequest{
		Table: "12",
		Items: []models.OrderItem{item("Burger")},
	})
	require.NoError(t, err)

	require.Equal(t, "PED-001", order.ID)
	require.Equal(t, "12", order.Table)
	require.Equal(t, models.StatusPreparing, order.Status)
	require.Equal(t, models.PriorityHigh, order.Priority)
	require.Equal(t, "12:30", order.ArrivalTime)
	require.Empty(t, order.ArchivedDate)

	events := pub.all()
	require.Len(t, events, 1)
	require.Equal(t, broadcast.EventOrderCreated, events[0].Event)
	require.Equal(t, order, events[0].Payload)
}

func TestSubmitDefaultsTable(t *testing.T) {
	svc, _, _ := newOrderService(t)

	order, err := svc.Submit(models.CreateOrderRequest{
		Items: []models.OrderItem{item("Burger")},
	})
	require.NoError(t, err)
	require.Equal(t, "0", order.Table)
}

func TestSubmitPriority(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.OrderItem
		priority string
	}{
		{"drink item", []models.OrderItem{item("Cola Drink")}, models.PriorityLow},
		{"case insensitive", []models.OrderItem{item("DRINK of the house")}, models.PriorityLow},
		{"drink among food", []models.OrderItem{item("Burger"), item("Soft drink")}, models.PriorityLow},
		{"food only", []models.OrderItem{item("Burger")}, models.PriorityHigh},
		{"no items", []models.OrderItem{}, models.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newOrderService(t)
			order, err := svc.Submit(models.CreateOrderRequest{Items: tt.items})
			require.NoError(t, err)
			require.Equal(t, tt.priority, order.Priority)
		})
	}
}

func TestSubmitRejectsMalformedItems(t *testing.T) {
	svc, st, pub := newOrderService(t)

	_, err := svc.Submit(models.CreateOrderRequest{
		Items: []models.OrderItem{{Name: "Burger"}}, // no quantity, no prices
	})
	require.ErrorIs(t, err, validation.ErrInvalidOrderShape)
	require.Equal(t, 0, st.Len())
	require.Empty(t, pub.all())
}

func TestSubmitRejectsMissingItems(t *testing.T) {
	svc, st, pub := newOrderService(t)

	// no items field at all: not a sequence, no phantom order
	_, err := svc.Submit(models.CreateOrderRequest{Table: "7"})
	require.ErrorIs(t, err, validation.ErrInvalidOrderShape)
	require.Equal(t, 0, st.Len())
	require.Empty(t, pub.all())

	// an explicitly empty sequence is still accepted
	order, err := svc.Submit(models.CreateOrderRequest{Table: "7", Items: []models.OrderItem{}})
	require.NoError(t, err)
	require.Equal(t, "PED-001", order.ID)
}

func TestSubmitSequenceWithinDay(t *testing.T) {
	svc, st, _ := newOrderService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(models.CreateOrderRequest{Items: []models.OrderItem{item("Burger")}})
		require.NoError(t, err)
	}

	active := svc.ListActive()
	require.Equal(t, []string{"PED-003", "PED-002", "PED-001"},
		[]string{active[0].ID, active[1].ID, active[2].ID})

	// archive reset starts the sequence over
	st.Drain()
	order, err := svc.Submit(models.CreateOrderRequest{Items: []models.OrderItem{item("Burger")}})
	require.NoError(t, err)
	require.Equal(t, "PED-001", order.ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, pub := newOrderService(t)

	order, err := svc.Submit(models.CreateOrderRequest{Items: []models.OrderItem{item("Burger")}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, "out for delivery")
	require.NoError(t, err)
	require.Equal(t, "out for delivery", updated.Status)

	events := pub.all()
	require.Len(t, events, 2)
	require.Equal(t, broadcast.EventOrderStatusChanged, events[1].Event)
	require.Equal(t, models.OrderStatusEvent{ID: order.ID, Status: "out for delivery"}, events[1].Payload)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, st, pub := newOrderService(t)

	_, err := svc.UpdateStatus("PED-404", "ready")
	require.ErrorIs(t, err, store.ErrOrderNotFound)
	require.Equal(t, 0, st.Len())
	require.Empty(t, pub.all())
}

func TestSubmittedOrderRoundTrips(t *testing.T) {
	svc, _, _ := newOrderService(t)

	req := models.CreateOrderRequest{
		Table: "5",
		Items: []models.OrderItem{item("Burger"), item("Fries")},
	}
	submitted, err := svc.Submit(req)
	require.NoError(t, err)

	active := svc.ListActive()
	require.Len(t, active, 1)
	require.Equal(t, submitted, active[0])
	require.Equal(t, req.Items, active[0].Items)
	require.Equal(t, req.Table, active[0].Table)
}
