package models

// OrderItem is a single line of a submitted order. Both prices travel with
// the item because the displays show local and foreign currency side by side.
type OrderItem struct {
	Name         string  `json:"name"`
	PriceLocal   float64 `json:"priceLocal"`
	PriceForeign float64 `json:"priceForeign"`
	Quantity     int     `json:"quantity"`
}

// Order is a live order held in memory until the archive cycle moves it
// into history. ArchivedDate stays empty while the order is active.
type Order struct {
	ID           string      `json:"id"`
	Table        string      `json:"table"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	Priority     string      `json:"priority"`
	ArrivalTime  string      `json:"arrivalTime"`
	ArchivedDate string      `json:"archivedDate,omitempty"`
}

const (
	StatusPreparing = "preparing"

	PriorityLow  = "low"
	PriorityHigh = "high"
)

// MenuItem is a catalog record. ID is assigned from the creation instant
// (unix milliseconds) and is unique within the catalog.
type MenuItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	PriceLocal   float64 `json:"priceLocal"`
	PriceForeign float64 `json:"priceForeign"`
	Description  string  `json:"description"`
}

type CreateOrderRequest struct {
	Table string      `json:"table,omitempty"`
	Items []OrderItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateMenuItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	PriceLocal   float64 `json:"priceLocal"`
	PriceForeign float64 `json:"priceForeign"`
	Description  string  `json:"description"`
}

// MenuItemPatch is a partial update. Nil fields are left untouched; the
// decoder rejects unknown fields instead of silently accepting them.
type MenuItemPatch struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Image        *string  `json:"image"`
	PriceLocal   *float64 `json:"priceLocal"`
	PriceForeign *float64 `json:"priceForeign"`
	Description  *string  `json:"description"`
}

// OrderStatusEvent is the payload broadcast when an order's status changes.
type OrderStatusEvent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// MenuItemRef is the payload broadcast when a menu item is deleted.
type MenuItemRef struct {
	ID int64 `json:"id"`
}
