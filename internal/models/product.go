package models

// Product is a menu item (dish or drink) from data/products.xml.
type Product struct {
	ID          int     `xml:"Id"`
	Name        string  `xml:"Name"`
	Category    string  `xml:"Category"`
	SubCategory string  `xml:"SubCategory"`
	Price       float64 `xml:"Price"`

	// Free-text details for the product sheet.
	Ingredients string `xml:"Ingredients"`
	Allergens   string `xml:"Allergens"`

	ImagePath string `xml:"Image"`

	// Logical stock control: unavailable items stay in the catalog but are
	// not offered for new orders.
	IsAvailable bool `xml:"IsAvailable"`
}

// DisplayCategory prefers the subcategory when one is set.
func (p *Product) DisplayCategory() string {
	if p.SubCategory != "" {
		return p.SubCategory
	}
	return p.Category
}
