package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/util/common"
	"github.com/evolvo-uz/evolvo/util/random"
)

var (
	// ErrMissingContact is returned when a lead lacks a name or phone.
	ErrMissingContact = errors.New("order requires a name and a phone number")
	// ErrBadStatus is returned for an unknown order status value.
	ErrBadStatus = errors.New("unknown order status")
)

var orderStatuses = map[string]bool{
	model.OrderStatusNew:        true,
	model.OrderStatusContacted:  true,
	model.OrderStatusInProgress: true,
	model.OrderStatusDone:       true,
	model.OrderStatusCancelled:  true,
}

// Notifier delivers operational notifications. Delivery failures never
// fail the primary operation.
type Notifier interface {
	SendMessage(text string) error
}

// OrderService handles lead-capture inquiries and their back-office
// lifecycle.
type OrderService struct {
	catalogService *CatalogService
	notifier       Notifier
}

func NewOrderService(catalogService *CatalogService, notifier Notifier) *OrderService {
	return &OrderService{catalogService: catalogService, notifier: notifier}
}

// CreateOrder validates and stores a new inquiry, then notifies the
// business over Telegram on a best-effort basis.
func (s *OrderService) CreateOrder(order *model.Order) error {
	if order.FullName == "" || order.Phone == "" {
		return ErrMissingContact
	}

	order.Reference = "ORD-" + random.Seq(8)
	order.Status = model.OrderStatusNew

	db := database.GetDB()
	if err := db.Create(order).Error; err != nil {
		return err
	}

	s.notifyNewOrder(order)
	return nil
}

func (s *OrderService) notifyNewOrder(order *model.Order) {
	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("New inquiry %s\nName: %s\nPhone: %s", order.Reference, order.FullName, order.Phone)
	if order.ServiceId != nil {
		if svc, err := s.catalogService.GetService(*order.ServiceId); err == nil {
			text += fmt.Sprintf("\nService: %s (from %s)", svc.TitleEn, common.FormatPrice(svc.PriceFrom))
		}
	}
	if order.Message != "" {
		text += "\nMessage: " + order.Message
	}
	if err := s.notifier.SendMessage(text); err != nil {
		logger.Warning("order notification failed:", err)
	}
}

// GetOrders lists inquiries for the back-office, newest first, optionally
// filtered by status.
func (s *OrderService) GetOrders(status string) ([]*model.Order, error) {
	db := database.GetDB()
	q := db.Model(model.Order{}).Preload("Service").Order("id desc")
	if status != "" {
		if !orderStatuses[status] {
			return nil, ErrBadStatus
		}
		q = q.Where("status = ?", status)
	}
	var orders []*model.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (s *OrderService) GetOrder(id int) (*model.Order, error) {
	db := database.GetDB()
	order := &model.Order{}
	err := db.Model(model.Order{}).Preload("Service").First(order, id).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order through the back-office workflow.
func (s *OrderService) UpdateStatus(id int, status string) error {
	if !orderStatuses[status] {
		return ErrBadStatus
	}
	db := database.GetDB()
	result := db.Model(model.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.GetDB().First(&model.Order{}, id).Error
	}
	return nil
}

func (s *OrderService) DeleteOrder(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Order{}, id).Error
}

// CountNewOrdersSince reports how many inquiries arrived after t; used by
// the daily Telegram digest.
func (s *OrderService) CountNewOrdersSince(t time.Time) (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Order{}).
		Where("created_at >= ?", t).
		Count(&count).
		Error
	return count, err
}
