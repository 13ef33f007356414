package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type PurchaseController struct {
	Store *state.Container
}

func NewPurchaseController(store *state.Container) *PurchaseController {
	return &PurchaseController{Store: store}
}

// GET /purchase-orders
func (ctl *PurchaseController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.PurchaseOrders())
}

// GET /purchase-orders/:id
func (ctl *PurchaseController) Get(c *gin.Context) {
	po, err := ctl.Store.PurchaseOrder(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, po)
}

// POST /purchase-orders
func (ctl *PurchaseController) Create(c *gin.Context) {
	var req struct {
		VendorID         string                     `json:"vendorId" binding:"required"`
		Items            []entity.PurchaseOrderItem `json:"items" binding:"required"`
		ExpectedDelivery *time.Time                 `json:"expectedDelivery"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.CreatePurchaseOrder(req.VendorID, req.Items, req.ExpectedDelivery)
	if err != nil {
		fail(c, err)
		return
	}
	po, _ := ctl.Store.PurchaseOrder(id)
	resp.Created(c, po)
}

// PUT /purchase-orders/:id/items
func (ctl *PurchaseController) UpdateItems(c *gin.Context) {
	var req struct {
		Items []entity.PurchaseOrderItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdatePurchaseOrderItems(c.Param("id"), req.Items); err != nil {
		fail(c, err)
		return
	}
	po, _ := ctl.Store.PurchaseOrder(c.Param("id"))
	resp.OK(c, po)
}

// PATCH /purchase-orders/:id/status
func (ctl *PurchaseController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.PurchaseOrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdatePurchaseOrderStatus(c.Param("id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// PATCH /purchase-orders/:id/payment
func (ctl *PurchaseController) UpdatePayment(c *gin.Context) {
	var req struct {
		PaymentStatus entity.PaymentProgress `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdatePurchaseOrderPayment(c.Param("id"), req.PaymentStatus); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"paymentStatus": req.PaymentStatus})
}
