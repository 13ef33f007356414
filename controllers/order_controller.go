package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/utils"
)

type OrderController struct {
	Store *state.Container
}

func NewOrderController(store *state.Container) *OrderController {
	return &OrderController{Store: store}
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.Orders())
}

// GET /orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	o, err := ctl.Store.Order(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var o entity.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.AddOrder(o)
	if err != nil {
		fail(c, err)
		return
	}
	created, _ := ctl.Store.Order(id)
	resp.Created(c, created)
}

// PATCH /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateOrderStatus(c.Param("id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteOrder(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// GET /orders/:id/invoice
func (ctl *OrderController) Invoice(c *gin.Context) {
	o, err := ctl.Store.Order(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	inv := utils.Invoice{
		OrderNumber:   o.ID,
		OrderType:     string(o.Source),
		CustomerName:  o.CustomerName,
		TaxRate:       0.05,
		PaymentStatus: "pending",
		IssuedAt:      o.CreatedAt,
	}
	if o.Status == entity.OrderDelivered {
		inv.PaymentStatus = "paid"
	}
	for _, it := range o.Items {
		inv.Lines = append(inv.Lines, utils.InvoiceLine{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.RenderInvoice(inv)))
}

// GET /orders/:id/ticket
func (ctl *OrderController) KitchenTicket(c *gin.Context) {
	o, err := ctl.Store.Order(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	tk := utils.Ticket{
		OrderNumber: o.ID,
		OrderType:   string(o.Source),
		PlacedAt:    o.CreatedAt,
	}
	for _, it := range o.Items {
		tk.Lines = append(tk.Lines, utils.TicketLine{Name: it.Name, Quantity: it.Quantity})
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.RenderKitchenTicket(tk)))
}
