package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/utils"
)

type DineInController struct {
	Store *state.Container
}

func NewDineInController(store *state.Container) *DineInController {
	return &DineInController{Store: store}
}

// GET /tables
func (ctl *DineInController) ListTables(c *gin.Context) {
	resp.OK(c, ctl.Store.Tables())
}

// POST /tables
func (ctl *DineInController) CreateTable(c *gin.Context) {
	var t entity.Table
	if err := c.ShouldBindJSON(&t); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddTable(t)
	created, _ := ctl.Store.Table(id)
	resp.Created(c, created)
}

// PATCH /tables/:id
func (ctl *DineInController) UpdateTable(c *gin.Context) {
	var patch state.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateTable(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	t, _ := ctl.Store.Table(c.Param("id"))
	resp.OK(c, t)
}

// DELETE /tables/:id
func (ctl *DineInController) DeleteTable(c *gin.Context) {
	if err := ctl.Store.DeleteTable(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// POST /tables/:id/reserve
func (ctl *DineInController) ReserveTable(c *gin.Context) {
	if err := ctl.Store.ReserveTable(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	t, _ := ctl.Store.Table(c.Param("id"))
	resp.OK(c, t)
}

// POST /tables/:id/free
func (ctl *DineInController) FreeTable(c *gin.Context) {
	if err := ctl.Store.FreeTable(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	t, _ := ctl.Store.Table(c.Param("id"))
	resp.OK(c, t)
}

// GET /waiters
func (ctl *DineInController) ListWaiters(c *gin.Context) {
	resp.OK(c, ctl.Store.Waiters())
}

// POST /waiters
func (ctl *DineInController) CreateWaiter(c *gin.Context) {
	var w entity.Waiter
	if err := c.ShouldBindJSON(&w); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddWaiter(w)
	resp.Created(c, gin.H{"id": id})
}

// POST /waiters/:id/tables
func (ctl *DineInController) AssignTable(c *gin.Context) {
	var req struct {
		TableID string `json:"tableId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.AssignTableToWaiter(c.Param("id"), req.TableID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"waiterId": c.Param("id"), "tableId": req.TableID})
}

// GET /dinein/orders
func (ctl *DineInController) ListOrders(c *gin.Context) {
	resp.OK(c, ctl.Store.DineInOrders())
}

// GET /dinein/orders/:id
func (ctl *DineInController) GetOrder(c *gin.Context) {
	o, err := ctl.Store.DineInOrder(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /dinein/orders
func (ctl *DineInController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID       string  `json:"tableId" binding:"required"`
		WaiterID      string  `json:"waiterId"`
		CustomerCount int     `json:"customerCount"`
		Total         float64 `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.CreateDineInOrder(req.TableID, req.WaiterID, req.CustomerCount, req.Total)
	if err != nil {
		fail(c, err)
		return
	}
	o, _ := ctl.Store.DineInOrder(id)
	resp.Created(c, o)
}

// POST /dinein/orders/:id/items
func (ctl *DineInController) AddItem(c *gin.Context) {
	var item entity.DineInOrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.AddDineInOrderItem(c.Param("id"), item); err != nil {
		fail(c, err)
		return
	}
	o, _ := ctl.Store.DineInOrder(c.Param("id"))
	resp.OK(c, o)
}

// DELETE /dinein/orders/:id/items/:index
func (ctl *DineInController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "item index must be a number")
		return
	}
	if err := ctl.Store.RemoveDineInOrderItem(c.Param("id"), index); err != nil {
		fail(c, err)
		return
	}
	o, _ := ctl.Store.DineInOrder(c.Param("id"))
	resp.OK(c, o)
}

// PATCH /dinein/orders/:id/items/:index/status
func (ctl *DineInController) UpdateItemStatus(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "item index must be a number")
		return
	}
	var req struct {
		Status entity.DineInItemStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateDineInItemStatus(c.Param("id"), index, req.Status); err != nil {
		fail(c, err)
		return
	}
	o, _ := ctl.Store.DineInOrder(c.Param("id"))
	resp.OK(c, o)
}

// POST /dinein/orders/:id/complete
func (ctl *DineInController) CompleteOrder(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.CompleteDineInOrder(c.Param("id"), req.PaymentMethod); err != nil {
		fail(c, err)
		return
	}
	o, _ := ctl.Store.DineInOrder(c.Param("id"))
	resp.OK(c, o)
}

// GET /dinein/orders/:id/ticket
func (ctl *DineInController) KitchenTicket(c *gin.Context) {
	o, err := ctl.Store.DineInOrder(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	tk := utils.Ticket{
		OrderNumber: o.ID,
		OrderType:   "dine-in",
		PlacedAt:    o.StartedAt,
	}
	if t, err := ctl.Store.Table(o.TableID); err == nil {
		tk.Table = fmt.Sprintf("%d", t.Number)
	}
	for _, it := range o.Items {
		tk.Lines = append(tk.Lines, utils.TicketLine{Name: it.Name, Quantity: it.Quantity})
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.RenderKitchenTicket(tk)))
}

// GET /dinein/orders/:id/invoice
func (ctl *DineInController) Invoice(c *gin.Context) {
	o, err := ctl.Store.DineInOrder(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	inv := utils.Invoice{
		OrderNumber:   o.ID,
		OrderType:     "dine-in",
		TaxRate:       0.05,
		PaymentStatus: string(o.PaymentStatus),
		IssuedAt:      o.StartedAt,
	}
	for _, it := range o.Items {
		inv.Lines = append(inv.Lines, utils.InvoiceLine{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.RenderInvoice(inv)))
}
