package repository

import (
	"strings"

	"go.uber.org/zap"

	"tpvcomida/internal/models"
	"tpvcomida/internal/store"
)

// Orders holds the ticket list. Orders are linked to their customers once
// per load; an order whose ClienteId has no match stays unlinked and is
// treated as a walk-in guest.
type Orders struct {
	store     *store.Store
	log       *zap.Logger
	customers *Customers
	orders    []models.Order
	loaded    bool
}

func NewOrders(st *store.Store, customers *Customers, log *zap.Logger) *Orders {
	return &Orders{store: st, log: log, customers: customers}
}

func (r *Orders) All() []models.Order {
	if !r.loaded {
		r.Refresh()
	}
	return r.orders
}

func (r *Orders) Refresh() {
	r.orders = r.store.LoadOrders()
	r.loaded = true
	r.Link()
}

// Link resolves each order's customer pointer against the customer
// collection via an id index. Safe to call again after either collection
// changed.
func (r *Orders) Link() {
	clients := r.customers.All()
	byID := make(map[int]*models.Customer, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}

	for i := range r.orders {
		order := &r.orders[i]
		order.Customer = nil
		if order.CustomerID > 0 {
			order.Customer = byID[order.CustomerID]
		}
	}
}

// ByStatus filters the cached orders, matching the status
// case-insensitively.
func (r *Orders) ByStatus(status string) []models.Order {
	status = strings.TrimSpace(status)
	filtered := make([]models.Order, 0)
	for _, o := range r.All() {
		if strings.EqualFold(o.Status, status) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Search filters orders whose customer name, id or status contains the
// given text. An empty filter returns everything.
func (r *Orders) Search(filter string) []models.Order {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return r.All()
	}

	filtered := make([]models.Order, 0)
	for _, o := range r.All() {
		if strings.Contains(strings.ToLower(o.CustomerName), filter) ||
			strings.Contains(o.ID, filter) ||
			strings.Contains(strings.ToLower(o.Status), filter) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Add prepends an order so the newest ticket lists first, then re-links.
func (r *Orders) Add(o models.Order) {
	r.orders = append([]models.Order{o}, r.All()...)
	r.loaded = true
	r.Link()
}

// Save rewrites the orders file with the cached collection.
func (r *Orders) Save() error {
	return r.store.SaveOrders(r.All())
}

// Replace swaps the cached collection and re-links, used by the session
// sync contract.
func (r *Orders) Replace(orders []models.Order) {
	r.orders = orders
	r.loaded = true
	r.Link()
}
