package domain

// GuestIdentity is the fallback cart identity for unauthenticated callers.
const GuestIdentity = "guest"

// CartItem is one distinct meal selection with a quantity inside a cart.
// The JSON shape doubles as the persistence format: a cart is stored as a
// serialised array of these records under an identity-scoped key.
type CartItem struct {
	MealID       string  `json:"mealId"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	ProviderID   string  `json:"providerId"`
	ProviderName string  `json:"providerName"`
	Quantity     int     `json:"quantity"`
}

// Cart is an ordered collection of line items scoped to one identity.
// It holds at most one line item per meal ID; adding an existing meal
// increments its quantity instead of duplicating the line.
type Cart struct {
	Items []CartItem
}

// Add merges item into the cart. When a line item with the same meal ID
// already exists its quantity is incremented by item.Quantity; otherwise the
// item is appended as-is. Quantities are trusted, not validated.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].MealID == item.MealID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line item with the given meal ID. No-op when absent.
func (c *Cart) Remove(mealID string) {
	for i := range c.Items {
		if c.Items[i].MealID == mealID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line item's quantity to exactly qty (absolute set,
// not a delta). A qty <= 0 removes the item.
func (c *Cart) SetQuantity(mealID string, qty int) {
	if qty <= 0 {
		c.Remove(mealID)
		return
	}
	for i := range c.Items {
		if c.Items[i].MealID == mealID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the entire cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// ClearProvider removes every line item sold by the given provider, keeping
// the remaining items in their original relative order. Used after an order
// is placed for that provider so other providers' selections stay untouched.
func (c *Cart) ClearProvider(providerID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProviderID != providerID {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		c.Items = nil
		return
	}
	c.Items = kept
}

// TotalItems returns the sum of quantities across all line items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all line items.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// ProviderGroup is a derived view: the subset of a cart sold by one provider.
// It is recomputed on demand for checkout segmentation, never persisted.
type ProviderGroup struct {
	ProviderID   string     `json:"providerId"`
	ProviderName string     `json:"providerName"`
	Items        []CartItem `json:"items"`
}

// GroupByProvider partitions items by provider. Group order follows the first
// occurrence of each provider in the input; item order within a group follows
// the input order.
func GroupByProvider(items []CartItem) []ProviderGroup {
	index := make(map[string]int, len(items))
	groups := make([]ProviderGroup, 0)

	for _, item := range items {
		i, ok := index[item.ProviderID]
		if !ok {
			i = len(groups)
			index[item.ProviderID] = i
			groups = append(groups, ProviderGroup{
				ProviderID:   item.ProviderID,
				ProviderName: item.ProviderName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
