package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/utils"
)

type InventoryController struct {
	Store *state.Container
}

func NewInventoryController(store *state.Container) *InventoryController {
	return &InventoryController{Store: store}
}

// GET /inventory/items
func (ctl *InventoryController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.InventoryItems())
}

// GET /inventory/items/:id
func (ctl *InventoryController) Get(c *gin.Context) {
	item, err := ctl.Store.InventoryItem(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /inventory/items
func (ctl *InventoryController) Create(c *gin.Context) {
	var req struct {
		entity.InventoryItem
		User string `json:"user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.AddInventoryItem(req.InventoryItem, req.User)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// PATCH /inventory/items/:id
func (ctl *InventoryController) Update(c *gin.Context) {
	var patch state.InventoryItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateInventoryItem(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}

// DELETE /inventory/items/:id
func (ctl *InventoryController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteInventoryItem(c.Param("id"), c.Query("user")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /inventory/items/:id/usage
func (ctl *InventoryController) RecordUsage(c *gin.Context) {
	var req struct {
		Quantity float64            `json:"quantity" binding:"required"`
		Reason   entity.UsageReason `json:"reason" binding:"required"`
		Notes    string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.RecordUsage(c.Param("id"), req.Quantity, req.Reason, req.Notes); err != nil {
		fail(c, err)
		return
	}
	item, _ := ctl.Store.InventoryItem(c.Param("id"))
	resp.OK(c, item)
}

// GET /inventory/items/low-stock
func (ctl *InventoryController) LowStock(c *gin.Context) {
	resp.OK(c, ctl.Store.LowStock())
}

// GET /inventory/usage
func (ctl *InventoryController) ListUsage(c *gin.Context) {
	resp.OK(c, ctl.Store.UsageRecords())
}

// GET /inventory/history
func (ctl *InventoryController) ListHistory(c *gin.Context) {
	resp.OK(c, ctl.Store.InventoryHistory())
}

// GET /inventory/history/export
func (ctl *InventoryController) ExportHistory(c *gin.Context) {
	records := make([]utils.Record, 0)
	for _, e := range ctl.Store.InventoryHistory() {
		records = append(records, utils.Record{
			{Key: "timestamp", Value: e.CreatedAt.Format("2006-01-02 15:04:05")},
			{Key: "action", Value: string(e.Action)},
			{Key: "item", Value: e.ItemName},
			{Key: "sku", Value: e.SKU},
			{Key: "previous", Value: e.PreviousValue},
			{Key: "new", Value: e.NewValue},
			{Key: "user", Value: e.User},
			{Key: "notes", Value: e.Notes},
		})
	}
	sendDelimited(c, "inventory-history.csv", records)
}

// GET /inventory/usage/export
func (ctl *InventoryController) ExportUsage(c *gin.Context) {
	records := make([]utils.Record, 0)
	for _, r := range ctl.Store.UsageRecords() {
		records = append(records, utils.Record{
			{Key: "timestamp", Value: r.CreatedAt.Format("2006-01-02 15:04:05")},
			{Key: "itemId", Value: r.ItemID},
			{Key: "quantity", Value: fmt.Sprintf("%g", r.Quantity)},
			{Key: "reason", Value: string(r.Reason)},
			{Key: "notes", Value: r.Notes},
		})
	}
	sendDelimited(c, "inventory-usage.csv", records)
}

func sendDelimited(c *gin.Context, filename string, records []utils.Record) {
	delimiter := c.DefaultQuery("delimiter", ",")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(utils.WriteDelimited(records, delimiter)))
}
