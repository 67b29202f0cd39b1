// services/order_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-backend/models"
	"restaurant-backend/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService owns the order lifecycle: creation against a table and the
// forward march through the status machine, including payment side effects.
type OrderService struct {
	DB      *gorm.DB
	Gateway PaymentGateway
}

func NewOrderService(db *gorm.DB, gateway PaymentGateway) *OrderService {
	return &OrderService{DB: db, Gateway: gateway}
}

type OrderItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	TableID uint               `json:"tableId" binding:"required"`
	UserID  uint               `json:"userId"`
	Items   []OrderItemRequest `json:"items" binding:"required"`
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// CreateOrder opens a dining session on a table. The table row is locked for
// the duration of the transaction and the active-order check plus the unique
// index on orders.active_table_key together guarantee that two concurrent
// requests for the same table cannot both commit.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, &ValidationError{Field: "items", Reason: "order needs at least one item"}
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return models.Order{}, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
		}
	}

	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&table, req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("table %d: %w", req.TableID, ErrNotFound)
			}
			return err
		}

		var existing models.Order
		err := tx.Where("table_id = ? AND status IN ?", table.ID, ActiveStatuses()).
			First(&existing).Error
		if err == nil {
			return &ConflictError{
				Resource:        "table",
				Reason:          fmt.Sprintf("table %d already has an active order", table.TableNumber),
				ExistingOrderID: existing.ID,
			}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Snapshot menu prices now; later menu edits must not move this
		// order's total.
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("menu item %d: %w", it.MenuItemID, ErrNotFound)
				}
				return err
			}
			if !menuItem.IsAvailable {
				return &ValidationError{Field: "items", Reason: fmt.Sprintf("menu item %q is not available", menuItem.Name)}
			}
			items = append(items, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   it.Quantity,
				Price:      menuItem.Price,
			})
		}

		refCode, err := utils.GenerateReferenceCode(8)
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}

		tableID := table.ID
		order = models.Order{
			RestaurantID:   table.RestaurantID,
			TableID:        table.ID,
			UserID:         req.UserID,
			Status:         models.OrderPlaced,
			ReferenceCode:  refCode,
			ActiveTableKey: &tableID,
		}
		if err := tx.Create(&order).Error; err != nil {
			if isDuplicateKey(err) {
				// Lost the race to a concurrent create; report whoever won.
				var winner models.Order
				if qErr := tx.Where("table_id = ? AND status IN ?", table.ID, ActiveStatuses()).
					First(&winner).Error; qErr == nil {
					return &ConflictError{
						Resource:        "table",
						Reason:          fmt.Sprintf("table %d already has an active order", table.TableNumber),
						ExistingOrderID: winner.ID,
					}
				}
				return &ConflictError{Resource: "table", Reason: "table already has an active order"}
			}
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items

		if table.Status != models.TableOccupied {
			if err := tx.Model(&table).Update("status", models.TableOccupied).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// AdvanceStatus moves an order to target, which must be the single legal
// successor of its current status. Side effects per transition:
//
//	served    -> completed: total is computed and a pending Payment created
//	completed -> paid:      payment settled through the gateway, table freed
func (s *OrderService) AdvanceStatus(orderID uint, target models.OrderStatus) (models.Order, error) {
	if !IsValidStatus(target) {
		return models.Order{}, &ValidationError{Field: "targetStatus", Reason: fmt.Sprintf("unknown status %q", target)}
	}

	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
			}
			return err
		}

		if err := CanTransition(order.Status, target); err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Find(&order.Items).Error; err != nil {
			return err
		}

		switch target {
		case models.OrderCompleted:
			if err := s.ensurePendingPayment(tx, &order); err != nil {
				return err
			}
		case models.OrderPaid:
			if err := s.settlePayment(tx, &order); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{"status": target}
		if target == models.OrderPaid {
			// Release the per-table uniqueness slot so a new order can open.
			updates["active_table_key"] = nil
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}
		order.Status = target

		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	// Reload the payment so the response carries its final state.
	var payment models.Payment
	if err := s.DB.Where("order_id = ?", order.ID).First(&payment).Error; err == nil {
		order.Payment = &payment
	}

	return order, nil
}

// OrderTotal sums item price×quantity in minor currency units.
func OrderTotal(items []models.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// ensurePendingPayment creates the order's Payment row if none exists yet.
// Amount is frozen here; completed is where the bill becomes final.
func (s *OrderService) ensurePendingPayment(tx *gorm.DB, order *models.Order) error {
	var payment models.Payment
	err := tx.Where("order_id = ?", order.ID).First(&payment).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	payment = models.Payment{
		OrderID: order.ID,
		Amount:  OrderTotal(order.Items),
		Status:  models.PaymentPending,
	}
	return tx.Create(&payment).Error
}

// settlePayment charges the gateway and marks the Payment paid. An order
// without a Payment row cannot be paid; that means it never went through
// completed.
func (s *OrderService) settlePayment(tx *gorm.DB, order *models.Order) error {
	var payment models.Payment
	if err := tx.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "payment", Reason: "no payment record exists for this order"}
		}
		return err
	}

	txnRef, err := s.Gateway.Charge(payment.Amount, order.ReferenceCode)
	if err != nil {
		return fmt.Errorf("payment gateway: %w", err)
	}

	now := time.Now()
	if err := tx.Model(&payment).Updates(map[string]interface{}{
		"status":          models.PaymentPaid,
		"paid_at":         now,
		"transaction_ref": txnRef,
	}).Error; err != nil {
		return err
	}
	payment.Status = models.PaymentPaid
	payment.PaidAt = &now
	payment.TransactionRef = txnRef
	order.Payment = &payment

	// Free the table unless staff reserved it for the next party meanwhile.
	res := tx.Model(&models.Table{}).
		Where("id = ? AND status = ?", order.TableID, models.TableOccupied).
		Update("status", models.TableAvailable)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("order %d paid but table %d was not in occupied state", order.ID, order.TableID)
	}

	return nil
}

// GetOrder returns one order with items and payment preloaded.
func (s *OrderService) GetOrder(id uint) (models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items.MenuItem").Preload("Payment").Preload("Table").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return models.Order{}, err
	}
	return order, nil
}

// ListOrders returns a restaurant's orders, optionally filtered by status or
// table, newest first.
func (s *OrderService) ListOrders(restaurantID uint, status models.OrderStatus, tableID uint) ([]models.Order, error) {
	q := s.DB.Preload("Items").Preload("Payment").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC")
	if status != "" {
		if !IsValidStatus(status) {
			return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
		}
		q = q.Where("status = ?", status)
	}
	if tableID != 0 {
		q = q.Where("table_id = ?", tableID)
	}

	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

// ActiveOrderForTable finds the order currently blocking a table, if any.
func (s *OrderService) ActiveOrderForTable(tableID uint) (models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items.MenuItem").
		Where("table_id = ? AND status IN ?", tableID, ActiveStatuses()).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, fmt.Errorf("active order for table %d: %w", tableID, ErrNotFound)
		}
		return models.Order{}, err
	}
	return order, nil
}
