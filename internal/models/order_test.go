package models

import "testing"

func TestCustomerLabel(t *testing.T) {
	linked := Order{CustomerID: 7, Customer: &Customer{ID: 7}}
	if got := linked.CustomerLabel(); got != "ID: C-0007" {
		t.Fatalf("expected padded customer id, got %q", got)
	}

	// The id is shown even when no matching record was found.
	unmatched := Order{CustomerID: 99}
	if got := unmatched.CustomerLabel(); got != "ID: C-0099" {
		t.Fatalf("expected padded customer id for unmatched reference, got %q", got)
	}

	guest := Order{}
	if got := guest.CustomerLabel(); got != GuestLabel {
		t.Fatalf("expected guest label, got %q", got)
	}
	if !guest.IsGuest() {
		t.Fatal("order with no customer reference must be a guest order")
	}
	if unmatched.IsGuest() {
		t.Fatal("unmatched reference keeps its customer id and is not a guest")
	}
}

func TestPrincipalAddressFallbacks(t *testing.T) {
	c := Customer{}
	if got := c.PrincipalAddress(); got != "Sin dirección" {
		t.Fatalf("expected placeholder, got %q", got)
	}

	c.Addresses = []Address{{Street: "Calle Luna 3"}}
	if got := c.PrincipalAddress(); got != "Calle Luna 3" {
		t.Fatalf("expected first address fallback, got %q", got)
	}

	c.Addresses = append(c.Addresses, Address{Principal: true, Street: "Calle Sol 9"})
	if got := c.PrincipalAddress(); got != "Calle Sol 9" {
		t.Fatalf("expected principal address, got %q", got)
	}
}
