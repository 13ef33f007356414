package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/controllers"
	"github.com/harisharnamm/rasoi-v1-sub000/middlewares"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, store *state.Container, hub *ws.EventHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(store)
	catCtrl := controllers.NewCategoryController(store)
	invCtrl := controllers.NewInventoryController(store)
	vendorCtrl := controllers.NewVendorController(store)
	poCtrl := controllers.NewPurchaseController(store)
	orderCtrl := controllers.NewOrderController(store)
	dineCtrl := controllers.NewDineInController(store)
	cartCtrl := controllers.NewCartController(store)
	storeCtrl := controllers.NewStoreController(store)
	custCtrl := controllers.NewCustomerController(store)

	// Menu
	m := r.Group("/menu")
	{
		m.GET("/items", menuCtrl.List)
		m.GET("/items/:id", menuCtrl.Get)
		m.POST("/items", menuCtrl.Create)
		m.PATCH("/items/:id", menuCtrl.Update)
		m.DELETE("/items/:id", menuCtrl.Delete)
		m.PATCH("/items/:id/availability", menuCtrl.SetAvailability)

		m.GET("/categories", catCtrl.List)
		m.POST("/categories", catCtrl.Create)
		m.PATCH("/categories/:id", catCtrl.Update)
		m.DELETE("/categories/:id", catCtrl.Delete)
		m.POST("/categories/reorder", catCtrl.Reorder)
		m.POST("/categories/:id/items", catCtrl.AssignItem)
		m.DELETE("/categories/:id/items/:itemId", catCtrl.UnassignItem)
	}

	// Inventory
	inv := r.Group("/inventory")
	{
		inv.GET("/items", invCtrl.List)
		inv.GET("/items/low-stock", invCtrl.LowStock)
		inv.GET("/items/:id", invCtrl.Get)
		inv.POST("/items", invCtrl.Create)
		inv.PATCH("/items/:id", invCtrl.Update)
		inv.DELETE("/items/:id", invCtrl.Delete)
		inv.POST("/items/:id/usage", invCtrl.RecordUsage)
		inv.GET("/usage", invCtrl.ListUsage)
		inv.GET("/history", invCtrl.ListHistory)
		inv.GET("/history/export", invCtrl.ExportHistory)
		inv.GET("/usage/export", invCtrl.ExportUsage)
	}

	// Vendors and purchase orders
	r.GET("/vendors", vendorCtrl.List)
	r.GET("/vendors/:id", vendorCtrl.Get)
	r.POST("/vendors", vendorCtrl.Create)
	r.PATCH("/vendors/:id", vendorCtrl.Update)
	r.DELETE("/vendors/:id", vendorCtrl.Delete)

	po := r.Group("/purchase-orders")
	{
		po.GET("", poCtrl.List)
		po.GET("/:id", poCtrl.Get)
		po.POST("", poCtrl.Create)
		po.PUT("/:id/items", poCtrl.UpdateItems)
		po.PATCH("/:id/status", poCtrl.UpdateStatus)
		po.PATCH("/:id/payment", poCtrl.UpdatePayment)
	}

	// Customer orders
	o := r.Group("/orders")
	{
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Get)
		o.POST("", orderCtrl.Create)
		o.PATCH("/:id/status", orderCtrl.UpdateStatus)
		o.DELETE("/:id", orderCtrl.Delete)
		o.GET("/:id/invoice", orderCtrl.Invoice)
		o.GET("/:id/ticket", orderCtrl.KitchenTicket)
	}

	// Cart
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Floor management
	t := r.Group("/tables")
	{
		t.GET("", dineCtrl.ListTables)
		t.POST("", dineCtrl.CreateTable)
		t.PATCH("/:id", dineCtrl.UpdateTable)
		t.DELETE("/:id", dineCtrl.DeleteTable)
		t.POST("/:id/reserve", dineCtrl.ReserveTable)
		t.POST("/:id/free", dineCtrl.FreeTable)
	}

	r.GET("/waiters", dineCtrl.ListWaiters)
	r.POST("/waiters", dineCtrl.CreateWaiter)
	r.POST("/waiters/:id/tables", dineCtrl.AssignTable)

	din := r.Group("/dinein/orders")
	{
		din.GET("", dineCtrl.ListOrders)
		din.GET("/:id", dineCtrl.GetOrder)
		din.POST("", dineCtrl.CreateOrder)
		din.POST("/:id/items", dineCtrl.AddItem)
		din.DELETE("/:id/items/:index", dineCtrl.RemoveItem)
		din.PATCH("/:id/items/:index/status", dineCtrl.UpdateItemStatus)
		din.POST("/:id/complete", dineCtrl.CompleteOrder)
		din.GET("/:id/ticket", dineCtrl.KitchenTicket)
		din.GET("/:id/invoice", dineCtrl.Invoice)
	}

	// Stores
	st := r.Group("/stores")
	{
		st.GET("", storeCtrl.List)
		st.GET("/:id", storeCtrl.Get)
		st.POST("", storeCtrl.Create)
		st.PATCH("/:id", storeCtrl.Update)
		st.DELETE("/:id", storeCtrl.Delete)
	}

	// Customers
	cu := r.Group("/customers")
	{
		cu.GET("", custCtrl.List)
		cu.GET("/export", custCtrl.Export)
		cu.GET("/:id", custCtrl.Get)
		cu.POST("", custCtrl.Create)
		cu.PATCH("/:id", custCtrl.Update)
		cu.DELETE("/:id", custCtrl.Delete)
	}

	// Live state feed
	r.GET("/ws/state/:slice", hub.HandleWebSocket)
}
