package models

// Customer is a registered client of the restaurant, with contact details,
// loyalty state and a reference list of past orders. Element names follow the
// layout of data/clients.xml.
type Customer struct {
	ID      int    `xml:"Id,attr"`
	Name    string `xml:"Nombre"`
	Surname string `xml:"Apellidos"`
	Photo   string `xml:"Foto"`

	// Tier is derived from accumulated loyalty points (Oro/Plata/Bronce).
	Tier string `xml:"Nivel"`

	Contact     ContactInfo `xml:"Contactos"`
	Addresses   []Address   `xml:"Direcciones>Direccion"`
	Allergies   []string    `xml:"Salud>Alergia"`
	Preferences Preferences `xml:"Preferencias"`
	Loyalty     Loyalty     `xml:"Fidelizacion"`
	History     []OrderRef  `xml:"HistorialPedidos>RefPedido"`
}

type ContactInfo struct {
	Phone string `xml:"Telefono"`
	Email string `xml:"Email"`
}

// Address keeps the street as element text; the attribute flags the
// principal delivery address.
type Address struct {
	Principal bool   `xml:"Principal,attr"`
	Street    string `xml:",chardata"`
}

type Preferences struct {
	PaymentMethod string `xml:"FormaPago"`
}

// Loyalty tracks point accrual and redemption for a customer.
type Loyalty struct {
	PointsAccumulated int `xml:"PuntosAcumulados"`
	PointsRedeemed    int `xml:"PuntosCanjeados"`
}

// OrderRef is a denormalized order summary kept inside the customer record.
type OrderRef struct {
	ID     string  `xml:"Id,attr"`
	Date   string  `xml:"Fecha,attr"`
	Total  float64 `xml:"Total,attr"`
	Status string  `xml:"Estado,attr"`
}

// FullName joins the name fields for display.
func (c *Customer) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}

// PrincipalAddress returns the street flagged as principal, falling back to
// the first address and then to a placeholder.
func (c *Customer) PrincipalAddress() string {
	for _, addr := range c.Addresses {
		if addr.Principal {
			return addr.Street
		}
	}
	if len(c.Addresses) > 0 {
		return c.Addresses[0].Street
	}
	return "Sin dirección"
}
