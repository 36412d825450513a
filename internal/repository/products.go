package repository

import (
	"strings"

	"go.uber.org/zap"

	"tpvcomida/internal/models"
	"tpvcomida/internal/store"
)

// Products holds the menu catalog.
type Products struct {
	store    *store.Store
	log      *zap.Logger
	products []models.Product
	loaded   bool
}

func NewProducts(st *store.Store, log *zap.Logger) *Products {
	return &Products{store: st, log: log}
}

func (r *Products) All() []models.Product {
	if !r.loaded {
		r.Refresh()
	}
	return r.products
}

func (r *Products) Refresh() {
	r.products = r.store.LoadProducts()
	r.loaded = true
}

// ByCategory filters the cached catalog, matching the category
// case-insensitively.
func (r *Products) ByCategory(category string) []models.Product {
	category = strings.TrimSpace(category)
	filtered := make([]models.Product, 0)
	for _, p := range r.All() {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories lists the distinct category names in catalog order.
func (r *Products) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.All() {
		key := strings.ToLower(p.Category)
		if !seen[key] {
			seen[key] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Available returns only the products offered for new orders.
func (r *Products) Available() []models.Product {
	filtered := make([]models.Product, 0)
	for _, p := range r.All() {
		if p.IsAvailable {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Save rewrites the catalog file with the cached collection.
func (r *Products) Save() error {
	return r.store.SaveProducts(r.All())
}

// Replace swaps the cached collection, used by the session sync contract.
func (r *Products) Replace(products []models.Product) {
	r.products = products
	r.loaded = true
}
