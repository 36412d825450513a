// Package loyalty implements the customer points rules: tier derivation,
// redemption and accrual. Every mutation recomputes the tier so it never
// drifts from the accumulated points.
package loyalty

import (
	"errors"

	"tpvcomida/internal/models"
)

// Tiers and the point thresholds that earn them.
const (
	TierGold   = "Oro"
	TierSilver = "Plata"
	TierBronze = "Bronce"

	GoldThreshold   = 2000
	SilverThreshold = 800
)

// Order-completion bonus: orders above the threshold earn a flat bonus for
// the linked customer.
const (
	BonusOrderTotal  = 20.0
	BonusOrderPoints = 3
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientPoints = errors.New("not enough accumulated points")
)

// TierFor derives the tier from accumulated points.
func TierFor(points int) string {
	switch {
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// Redeem moves amount from accumulated to redeemed. The customer is left
// untouched when the amount is non-positive or exceeds the balance.
func Redeem(c *models.Customer, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > c.Loyalty.PointsAccumulated {
		return ErrInsufficientPoints
	}

	c.Loyalty.PointsAccumulated -= amount
	c.Loyalty.PointsRedeemed += amount
	c.Tier = TierFor(c.Loyalty.PointsAccumulated)
	return nil
}

// Accrue adds earned points and recomputes the tier.
func Accrue(c *models.Customer, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	c.Loyalty.PointsAccumulated += amount
	c.Tier = TierFor(c.Loyalty.PointsAccumulated)
	return nil
}

// SetPoints overwrites the accumulated balance (manual edit from the
// customer sheet) and recomputes the tier.
func SetPoints(c *models.Customer, points int) error {
	if points < 0 {
		return ErrInvalidAmount
	}

	c.Loyalty.PointsAccumulated = points
	c.Tier = TierFor(points)
	return nil
}

// OrderBonus returns the points earned for completing an order of the given
// total. Small tickets earn nothing.
func OrderBonus(total float64) int {
	if total > BonusOrderTotal {
		return BonusOrderPoints
	}
	return 0
}
