package configs

import (
	"log"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

// SeedDemo loads a small demo catalog into an empty container so a fresh
// install has something on screen. Skipped when any data exists.
func SeedDemo(c *state.Container) error {
	if len(c.MenuItems()) > 0 || len(c.InventoryItems()) > 0 || len(c.Tables()) > 0 {
		log.Println("state not empty, skipping demo seed")
		return nil
	}

	vendorID := c.AddVendor(entity.Vendor{
		Name:     "Fresh Farms Co",
		Contact:  "+91 98222 33445",
		Email:    "orders@freshfarms.example",
		Category: "produce",
	})

	riceID, err := c.AddInventoryItem(entity.InventoryItem{
		Name: "Basmati Rice", SKU: "DRY-001", Category: "dry goods",
		Unit: "kg", Price: 95, VendorID: vendorID,
		MinimumStock: 10, CurrentStock: 40,
	}, "seed")
	if err != nil {
		return err
	}
	if _, err := c.AddInventoryItem(entity.InventoryItem{
		Name: "Paneer", SKU: "DAIRY-001", Category: "dairy",
		Unit: "kg", Price: 320, VendorID: vendorID,
		MinimumStock: 3, CurrentStock: 8,
	}, "seed"); err != nil {
		return err
	}

	mains := c.AddCategory(entity.MenuCategory{Name: "Mains", Active: true})
	c.AddCategory(entity.MenuCategory{Name: "Breads", Active: true})

	biryani := c.AddMenuItem(entity.MenuItem{
		Name: "Veg Biryani", Description: "House special, serves one",
		Price: 220, Available: true, CategoryID: mains,
		Ingredients: []entity.Ingredient{
			{InventoryItemID: riceID, Quantity: 0.25, Unit: "kg", WastagePercent: 5},
		},
		PrepTime: 25,
	})
	if err := c.AssignMenuItem(mains, biryani); err != nil {
		return err
	}

	for n := 1; n <= 6; n++ {
		c.AddTable(entity.Table{
			Number: n, Capacity: 4, Shape: "square",
			X: float64((n - 1) % 3 * 120), Y: float64((n - 1) / 3 * 120),
			Section: "main",
		})
	}
	c.AddWaiter(entity.Waiter{Name: "Arjun"})

	log.Println("demo data seeded")
	return nil
}
