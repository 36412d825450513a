package models

import "fmt"

// Order statuses are an open set; these are the ones the application assigns
// itself. Files may carry other values and they are preserved as-is.
const (
	StatusPending   = "Pendiente"
	StatusInKitchen = "En Cocina"
	StatusOnTheWay  = "En Reparto"
	StatusDelivered = "Entregado"
)

// GuestLabel is shown for orders with no resolvable customer.
const GuestLabel = "Invitado"

// Order is a single ticket from data/pedidos.xml. CustomerName is a snapshot
// taken at creation time and kept for historical display even if the
// customer record changes later.
type Order struct {
	ID           string   `xml:"Id,attr"`
	CustomerID   int      `xml:"ClienteId"`
	CustomerName string   `xml:"NombreCliente"`
	DeliveryType string   `xml:"TipoEntrega"`
	Date         string   `xml:"Fecha"`
	Time         string   `xml:"Hora"`
	Status       string   `xml:"Estado"`
	Total        float64  `xml:"Total"`
	Items        []string `xml:"Detalle>Item"`

	// Customer is resolved in memory after load and never serialized.
	// nil means a walk-in guest order.
	Customer *Customer `xml:"-"`
}

// IsGuest reports whether the order has no resolvable customer reference.
func (o *Order) IsGuest() bool {
	return o.Customer == nil && o.CustomerID <= 0
}

// CustomerLabel renders the linked customer id, or the guest label.
func (o *Order) CustomerLabel() string {
	if o.Customer != nil {
		return fmt.Sprintf("ID: C-%04d", o.Customer.ID)
	}
	if o.CustomerID > 0 {
		return fmt.Sprintf("ID: C-%04d", o.CustomerID)
	}
	return GuestLabel
}

// Ref builds the denormalized summary stored in the customer's history.
func (o *Order) Ref() OrderRef {
	return OrderRef{
		ID:     o.ID,
		Date:   o.Date,
		Total:  o.Total,
		Status: o.Status,
	}
}
