package repository

import (
	"go.uber.org/zap"

	"tpvcomida/internal/models"
	"tpvcomida/internal/store"
)

// Customers holds the client base.
type Customers struct {
	store   *store.Store
	log     *zap.Logger
	clients []models.Customer
	loaded  bool
}

func NewCustomers(st *store.Store, log *zap.Logger) *Customers {
	return &Customers{store: st, log: log}
}

func (r *Customers) All() []models.Customer {
	if !r.loaded {
		r.Refresh()
	}
	return r.clients
}

func (r *Customers) Refresh() {
	r.clients = r.store.LoadClients()
	r.loaded = true
}

// ByID returns a pointer into the cached collection, or nil.
func (r *Customers) ByID(id int) *models.Customer {
	clients := r.All()
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

// NextID yields max(id)+1, starting at 1 for an empty collection.
func (r *Customers) NextID() int {
	next := 1
	for _, c := range r.All() {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// Add appends a customer to the cached collection.
func (r *Customers) Add(c models.Customer) {
	r.clients = append(r.All(), c)
	r.loaded = true
}

// Save rewrites the clients file with the cached collection.
func (r *Customers) Save() error {
	return r.store.SaveClients(r.All())
}

// Replace swaps the cached collection, used by the session sync contract.
func (r *Customers) Replace(clients []models.Customer) {
	r.clients = clients
	r.loaded = true
}
