package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type CartController struct {
	Store *state.Container
}

func NewCartController(store *state.Container) *CartController {
	return &CartController{Store: store}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	resp.OK(c, ctl.Store.Cart())
}

// POST /cart/items
func (ctl *CartController) AddItem(c *gin.Context) {
	var req struct {
		ItemID string  `json:"itemId" binding:"required"`
		Name   string  `json:"name" binding:"required"`
		Price  float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Store.AddToCart(req.ItemID, req.Name, req.Price)
	resp.OK(c, ctl.Store.Cart())
}

// PATCH /cart/items/:itemId
func (ctl *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateCartQuantity(c.Param("itemId"), req.Quantity); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ctl.Store.Cart())
}

// DELETE /cart/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	if err := ctl.Store.RemoveFromCart(c.Param("itemId")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ctl.Store.Cart())
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	ctl.Store.ClearCart()
	resp.OK(c, ctl.Store.Cart())
}

// POST /cart/checkout
func (ctl *CartController) Checkout(c *gin.Context) {
	var req struct {
		CustomerName    string             `json:"customerName"`
		CustomerPhone   string             `json:"customerPhone"`
		DeliveryAddress string             `json:"deliveryAddress"`
		Source          entity.OrderSource `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.Checkout(req.CustomerName, req.CustomerPhone, req.DeliveryAddress, req.Source)
	if err != nil {
		fail(c, err)
		return
	}
	order, _ := ctl.Store.Order(id)
	resp.Created(c, order)
}
