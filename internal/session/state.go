// Package session holds the master data shared by every view for the
// lifetime of a login. Views borrow the slices, mutate them freely and hand
// them back through the sync methods before navigating away.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tpvcomida/internal/loyalty"
	"tpvcomida/internal/models"
	"tpvcomida/internal/repository"
)

// WalkInName is the customer-name snapshot used for counter orders.
const WalkInName = "Cliente Mostrador"

var ErrOrderNotFound = errors.New("order not found")

// State is the per-session application state: the logged-in operator plus
// the master collections, loaded once at login. Single operator, single
// process; no locking.
type State struct {
	CurrentUser *models.UserAccount

	Products  []models.Product
	Customers []models.Customer
	Orders    []models.Order

	products  *repository.Products
	customers *repository.Customers
	orders    *repository.Orders

	validate *validator.Validate
	log      *zap.Logger
}

// Open loads every collection and links orders to customers.
func Open(user *models.UserAccount, products *repository.Products, customers *repository.Customers, orders *repository.Orders, log *zap.Logger) *State {
	s := &State{
		CurrentUser: user,
		products:    products,
		customers:   customers,
		orders:      orders,
		validate:    validator.New(),
		log:         log,
	}

	s.Products = products.All()
	s.Customers = customers.All()
	s.Orders = orders.All()

	log.Info("session opened",
		zap.String("username", user.Username),
		zap.Int("products", len(s.Products)),
		zap.Int("customers", len(s.Customers)),
		zap.Int("orders", len(s.Orders)))

	return s
}

// Sync pulls the latest slices back from the views into the repositories
// and re-links orders. Call before navigating between views.
func (s *State) Sync(products []models.Product, customers []models.Customer, orders []models.Order) {
	if products != nil {
		s.Products = products
	}
	if customers != nil {
		s.Customers = customers
	}
	if orders != nil {
		s.Orders = orders
	}

	s.products.Replace(s.Products)
	s.customers.Replace(s.Customers)
	s.orders.Replace(s.Orders)

	// Replace re-links against the fresh customer slice.
	s.Orders = s.orders.All()
}

// OrderDraft is a new ticket built from the cart screen.
type OrderDraft struct {
	CustomerID   int              `validate:"min=0"`
	DeliveryType string           `validate:"required"`
	Cart         []models.Product `validate:"min=1"`
}

// CreateOrder validates the draft, builds the order with a fresh id and
// date/time stamps, applies the loyalty bonus for linked customers and adds
// it to the master list (newest first).
func (s *State) CreateOrder(draft OrderDraft) (*models.Order, error) {
	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid order draft: %w", err)
	}

	var total float64
	items := make([]string, 0, len(draft.Cart))
	for _, p := range draft.Cart {
		total += p.Price
		items = append(items, p.Name)
	}

	now := time.Now()
	order := models.Order{
		ID:           uuid.NewString(),
		CustomerID:   draft.CustomerID,
		CustomerName: WalkInName,
		DeliveryType: strings.TrimSpace(draft.DeliveryType),
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04"),
		Status:       models.StatusPending,
		Total:        total,
		Items:        items,
	}

	if customer := s.customers.ByID(draft.CustomerID); customer != nil {
		order.CustomerName = customer.FullName()
		if bonus := loyalty.OrderBonus(total); bonus > 0 {
			if err := loyalty.Accrue(customer, bonus); err == nil {
				s.log.Info("loyalty bonus accrued",
					zap.Int("customer", customer.ID), zap.Int("points", bonus))
			}
		}
		customer.History = append(customer.History, order.Ref())
	}

	s.orders.Add(order)
	s.Orders = s.orders.All()

	return &s.Orders[0], nil
}

// CustomerDraft is a new client record from the registration form.
type CustomerDraft struct {
	Name          string `validate:"required"`
	Surname       string
	Phone         string
	Email         string `validate:"omitempty,email"`
	PaymentMethod string
	Street        string
}

// CreateCustomer validates the draft and registers the customer with the
// next free id and zero loyalty state.
func (s *State) CreateCustomer(draft CustomerDraft) (*models.Customer, error) {
	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid customer draft: %w", err)
	}

	customer := models.Customer{
		ID:      s.customers.NextID(),
		Name:    strings.TrimSpace(draft.Name),
		Surname: strings.TrimSpace(draft.Surname),
		Contact: models.ContactInfo{
			Phone: strings.TrimSpace(draft.Phone),
			Email: strings.TrimSpace(draft.Email),
		},
		Preferences: models.Preferences{PaymentMethod: draft.PaymentMethod},
	}
	if street := strings.TrimSpace(draft.Street); street != "" {
		customer.Addresses = []models.Address{{Principal: true, Street: street}}
	}

	s.customers.Add(customer)
	s.Customers = s.customers.All()
	// Customer pointers held by linked orders may now be stale.
	s.orders.Link()

	return s.customers.ByID(customer.ID), nil
}

// SetCustomerPoints overwrites a customer's accumulated points from the
// edit sheet and recomputes the tier.
func (s *State) SetCustomerPoints(customerID, points int) error {
	customer := s.customers.ByID(customerID)
	if customer == nil {
		return fmt.Errorf("customer %d not found", customerID)
	}
	return loyalty.SetPoints(customer, points)
}

// RedeemPoints spends points from a customer's balance.
func (s *State) RedeemPoints(customerID, amount int) error {
	customer := s.customers.ByID(customerID)
	if customer == nil {
		return fmt.Errorf("customer %d not found", customerID)
	}
	return loyalty.Redeem(customer, amount)
}

// UpdateOrderStatus assigns a new status to the matching order. The status
// set is open: any non-empty string is accepted.
func (s *State) UpdateOrderStatus(orderID, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return errors.New("status must not be empty")
	}

	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}
