package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"la-carta/internal/broadcast"
	"la-carta/internal/clock"
	"la-carta/internal/store"
	"la-carta/pkg/models"
)

var ErrMissingRequiredField = errors.New("missing required fields")

// MenuService is plain keyed-record CRUD over the catalog file, with a
// broadcast after every successful mutation.
type MenuService struct {
	store     *store.MenuStore
	publisher broadcast.Publisher
	clock     clock.Clock
	zaplog    *zap.Logger
}

func NewMenuService(st *store.MenuStore, pub broadcast.Publisher, clk clock.Clock, zaplog *zap.Logger) *MenuService {
	return &MenuService{store: st, publisher: pub, clock: clk, zaplog: zaplog}
}

func (s *MenuService) List() []models.MenuItem {
	return s.store.List()
}

// Create adds a catalog record. All six fields are required; the id comes
// from the creation instant.
func (s *MenuService) Create(req models.CreateMenuItemRequest) (models.MenuItem, error) {
	if req.Name == "" || req.Category == "" || req.Image == "" ||
		req.PriceLocal == 0 || req.PriceForeign == 0 || req.Description == "" {
		return models.MenuItem{}, ErrMissingRequiredField
	}

	item := models.MenuItem{
		ID:           s.clock.Now().UnixMilli(),
		Name:         req.Name,
		Category:     req.Category,
		Image:        req.Image,
		PriceLocal:   req.PriceLocal,
		PriceForeign: req.PriceForeign,
		Description:  req.Description,
	}

	if err := s.store.Add(item); err != nil {
		return models.MenuItem{}, fmt.Errorf("save menu: %w", err)
	}

	s.zaplog.Info("menu item created",
		zap.String("action", "menu_item_created"),
		zap.Int64("item_id", item.ID),
	)

	s.publisher.Publish(broadcast.EventMenuUpdated, item)
	return item, nil
}

// Update merges the patch field by field onto the existing record. Absent
// fields keep their value.
func (s *MenuService) Update(id int64, patch models.MenuItemPatch) (models.MenuItem, error) {
	item, ok := s.store.Get(id)
	if !ok {
		return models.MenuItem{}, store.ErrMenuItemNotFound
	}

	applyPatch(&item, patch)

	if err := s.store.Replace(item); err != nil {
		return models.MenuItem{}, fmt.Errorf("save menu: %w", err)
	}

	s.zaplog.Info("menu item updated",
		zap.String("action", "menu_item_updated"),
		zap.Int64("item_id", id),
	)

	s.publisher.Publish(broadcast.EventMenuUpdated, item)
	return item, nil
}

// Delete removes a record by id. Removing an absent id still succeeds.
func (s *MenuService) Delete(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}

	s.zaplog.Info("menu item deleted",
		zap.String("action", "menu_item_deleted"),
		zap.Int64("item_id", id),
	)

	s.publisher.Publish(broadcast.EventMenuUpdated, models.MenuItemRef{ID: id})
	return nil
}

func applyPatch(item *models.MenuItem, patch models.MenuItemPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.PriceLocal != nil {
		item.PriceLocal = *patch.PriceLocal
	}
	if patch.PriceForeign != nil {
		item.PriceForeign = *patch.PriceForeign
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
}
