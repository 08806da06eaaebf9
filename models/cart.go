package models

import "sync"

// CartLine is one selected menu item with its quantity. Quantity is
// always >= 1 while the line exists; a line dropped to zero is removed
// from the cart, never kept at zero.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int64    `json:"quantity"`
}

// Cart holds the items a session has selected, in first-add order.
// Quantity edits keep a line's position; only removal and re-add move
// it to the end. Safe for concurrent access.
type Cart struct {
	mu    sync.RWMutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of item in the cart. If the item is already
// present its quantity goes up by one; otherwise a new line is appended.
func (c *Cart) AddItem(item MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// UpdateQuantity sets the quantity of the line for itemID. A quantity
// of zero or less removes the line. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// RemoveItem drops the line for itemID if present.
func (c *Cart) RemoveItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in cart order.
func (c *Cart) Lines() []CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines,
// in RWF.
func (c *Cart) TotalPrice() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, line := range c.lines {
		total += line.Item.Price * line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines) == 0
}
