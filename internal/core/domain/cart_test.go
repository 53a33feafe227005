package domain

import "testing"

func burger(qty int) CartItem {
	return CartItem{
		MealID:       "meal_1",
		Title:        "Beef Burger",
		Price:        10,
		ProviderID:   "prov_1",
		ProviderName: "Burger House",
		Quantity:     qty,
	}
}

func pizza(qty int) CartItem {
	return CartItem{
		MealID:       "meal_2",
		Title:        "Margherita",
		Price:        12,
		ProviderID:   "prov_2",
		ProviderName: "Pizza Corner",
		Quantity:     qty,
	}
}

func biryani(qty int) CartItem {
	return CartItem{
		MealID:       "meal_3",
		Title:        "Chicken Biryani",
		Price:        8,
		ProviderID:   "prov_1",
		ProviderName: "Burger House",
		Quantity:     qty,
	}
}

func TestCart_Add_MergesByMealID(t *testing.T) {
	var c Cart
	c.Add(burger(2))
	c.Add(burger(3))

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", c.Items[0].Quantity)
	}
	if c.TotalPrice() != 50 {
		t.Errorf("expected total price 50, got %v", c.TotalPrice())
	}
}

func TestCart_Add_AppendsNewMeal(t *testing.T) {
	var c Cart
	c.Add(burger(1))
	c.Add(pizza(1))

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(c.Items))
	}
	if c.Items[0].MealID != "meal_1" || c.Items[1].MealID != "meal_2" {
		t.Errorf("expected insertion order preserved, got %v", c.Items)
	}
}

func TestCart_Remove(t *testing.T) {
	var c Cart
	c.Add(burger(1))
	c.Add(pizza(1))
	c.Remove("meal_1")

	if len(c.Items) != 1 || c.Items[0].MealID != "meal_2" {
		t.Errorf("expected only meal_2 left, got %v", c.Items)
	}

	// removing an absent meal is a no-op
	c.Remove("meal_404")
	if len(c.Items) != 1 {
		t.Errorf("expected no-op removal, got %v", c.Items)
	}
}

func TestCart_SetQuantity_IsAbsolute(t *testing.T) {
	var c Cart
	c.Add(burger(2))
	c.SetQuantity("meal_1", 7)

	if c.Items[0].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", c.Items[0].Quantity)
	}
}

func TestCart_SetQuantity_ZeroRemoves(t *testing.T) {
	var c Cart
	c.Add(burger(2))
	c.Add(pizza(1))

	c.SetQuantity("meal_1", 0)
	if len(c.Items) != 1 {
		t.Fatalf("expected item removed at qty 0, got %v", c.Items)
	}
	c.SetQuantity("meal_2", -3)
	if !c.Empty() {
		t.Errorf("expected item removed at negative qty, got %v", c.Items)
	}
}

func TestCart_ClearProvider_KeepsOtherProviders(t *testing.T) {
	var c Cart
	c.Add(burger(1))
	c.Add(pizza(2))
	c.Add(biryani(1))

	c.ClearProvider("prov_1")

	if len(c.Items) != 1 || c.Items[0].MealID != "meal_2" {
		t.Fatalf("expected only the other provider's item left, got %v", c.Items)
	}
	if c.Items[0].Quantity != 2 {
		t.Errorf("expected untouched quantity 2, got %d", c.Items[0].Quantity)
	}
}

func TestCart_ClearProvider_LastProviderEmptiesCart(t *testing.T) {
	var c Cart
	c.Add(burger(1))
	c.Add(biryani(1))

	c.ClearProvider("prov_1")

	if !c.Empty() {
		t.Errorf("expected empty cart, got %v", c.Items)
	}
	if c.Items != nil {
		t.Errorf("expected nil items after clearing last provider")
	}
}

func TestCart_Totals(t *testing.T) {
	var c Cart
	c.Add(burger(2))  // 2 x 10
	c.Add(pizza(1))   // 1 x 12
	c.Add(biryani(3)) // 3 x 8

	if got := c.TotalItems(); got != 6 {
		t.Errorf("expected 6 total items, got %d", got)
	}
	if got := c.TotalPrice(); got != 56 {
		t.Errorf("expected total price 56, got %v", got)
	}
}

func TestGroupByProvider_PartitionsAndPreservesOrder(t *testing.T) {
	items := []CartItem{burger(1), pizza(2), biryani(1)}

	groups := GroupByProvider(items)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].ProviderID != "prov_1" || groups[1].ProviderID != "prov_2" {
		t.Errorf("expected first-occurrence group order, got %v", groups)
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("expected 2 items in prov_1 group, got %d", len(groups[0].Items))
	}
	if groups[0].Items[0].MealID != "meal_1" || groups[0].Items[1].MealID != "meal_3" {
		t.Errorf("expected item order within group preserved, got %v", groups[0].Items)
	}
	if groups[0].ProviderName != "Burger House" {
		t.Errorf("unexpected provider name: %s", groups[0].ProviderName)
	}

	// every input item appears in exactly one group
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	if total != len(items) {
		t.Errorf("expected groups to partition items, got %d of %d", total, len(items))
	}
}

func TestGroupByProvider_Empty(t *testing.T) {
	groups := GroupByProvider(nil)
	if len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %v", groups)
	}
}
