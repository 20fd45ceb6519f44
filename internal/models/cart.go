package models

import (
	"errors"
	"fmt"
)

// MaxLineQuantity caps a single cart line
const MaxLineQuantity = 1000

// ErrInvalidQuantity is returned for quantities outside 1..MaxLineQuantity
var ErrInvalidQuantity = errors.New("quantity must be between 1 and 1000")

// CartLine is a product and how many of it are in the cart
type CartLine struct {
	Product  Product
	Quantity int
}

// Total returns the line total in cents
func (l CartLine) Total() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart belongs to one browser session
type Cart struct {
	ID    string
	Lines []CartLine
}

// Add puts qty of p into the cart, merging with an existing line for the same product
func (c *Cart) Add(p Product, qty int) error {
	if qty < 1 || qty > MaxLineQuantity {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			if c.Lines[i].Quantity+qty > MaxLineQuantity {
				return fmt.Errorf("%w: line would hold %d", ErrInvalidQuantity, c.Lines[i].Quantity+qty)
			}
			c.Lines[i].Quantity += qty
			return nil
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: qty})
	return nil
}

// Total returns the cart total in cents
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// Count returns the number of items across all lines
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = nil
}
