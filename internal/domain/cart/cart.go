// Package cart is the in-memory shopping cart. Nothing here is persisted.
package cart

import (
	"slices"

	"jild/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// OrderPlacedMessage is the checkout success notice.
const OrderPlacedMessage = "Your order has been placed successfully! It will be delivered within 3-5 business days."

// PaymentCashOnDelivery is the only payment method offered.
const PaymentCashOnDelivery = "cash_on_delivery"

var taxRate = decimal.RequireFromString("0.08")

// Line is one product in the cart. Quantity is always at least 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines keyed by product id, plus a wishlist.
// It is not safe for concurrent use.
type Cart struct {
	lines    []Line
	wishlist []int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart; an existing line is incremented.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++

			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove drops the line for productID and reports whether one existed.
func (c *Cart) Remove(productID int) bool {
	idx := c.index(productID)
	if idx < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, idx, idx+1)

	return true
}

// UpdateQuantity sets the quantity of a line. Values below 1 are ignored and
// report false, as do unknown products.
func (c *Cart) UpdateQuantity(productID, quantity int) bool {
	if quantity < 1 {
		return false
	}
	idx := c.index(productID)
	if idx < 0 {
		return false
	}
	c.lines[idx].Quantity = quantity

	return true
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Count is the total number of units.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}

	return n
}

// Total sums every line.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}

	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// ToggleWishlist flips productID in the wishlist and reports whether it is now present.
func (c *Cart) ToggleWishlist(productID int) bool {
	if idx := slices.Index(c.wishlist, productID); idx >= 0 {
		c.wishlist = slices.Delete(c.wishlist, idx, idx+1)

		return false
	}
	c.wishlist = append(c.wishlist, productID)

	return true
}

// Wishlist returns the wishlisted product ids in insertion order.
func (c *Cart) Wishlist() []int {
	return slices.Clone(c.wishlist)
}

// Summary is the checkout breakdown.
type Summary struct {
	Lines    []SummaryLine `json:"lines"`
	Subtotal string        `json:"subtotal"`
	Tax      string        `json:"tax"`
	Total    string        `json:"total"`
	Count    int           `json:"count"`
}

// SummaryLine is one row of the order summary.
type SummaryLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Amount    string `json:"amount"`
}

// Summarize renders the order summary with 8% tax, amounts to two decimals.
func (c *Cart) Summarize() Summary {
	subtotal := c.Total()
	tax := subtotal.Mul(taxRate)
	out := Summary{
		Lines:    make([]SummaryLine, 0, len(c.lines)),
		Subtotal: subtotal.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    subtotal.Add(tax).StringFixed(2),
		Count:    c.Count(),
	}
	for _, l := range c.lines {
		out.Lines = append(out.Lines, SummaryLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			Amount:    l.Subtotal().StringFixed(2),
		})
	}

	return out
}

// Confirmation is returned by PlaceOrder. It is not an order record.
type Confirmation struct {
	Message       string  `json:"message"`
	PaymentMethod string  `json:"payment_method"`
	Summary       Summary `json:"summary"`
}

// PlaceOrder clears the cart and returns the success notice. No order survives.
func (c *Cart) PlaceOrder() Confirmation {
	conf := Confirmation{
		Message:       OrderPlacedMessage,
		PaymentMethod: PaymentCashOnDelivery,
		Summary:       c.Summarize(),
	}
	c.lines = nil

	return conf
}

func (c *Cart) index(productID int) int {
	return slices.IndexFunc(c.lines, func(l Line) bool {
		return l.Product.ID == productID
	})
}
