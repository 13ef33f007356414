package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type VendorController struct {
	Store *state.Container
}

func NewVendorController(store *state.Container) *VendorController {
	return &VendorController{Store: store}
}

// GET /vendors
func (ctl *VendorController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.Vendors())
}

// GET /vendors/:id
func (ctl *VendorController) Get(c *gin.Context) {
	v, err := ctl.Store.Vendor(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /vendors
func (ctl *VendorController) Create(c *gin.Context) {
	var req entity.Vendor
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddVendor(req)
	resp.Created(c, gin.H{"id": id})
}

// PATCH /vendors/:id
func (ctl *VendorController) Update(c *gin.Context) {
	var patch state.VendorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateVendor(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}

// DELETE /vendors/:id
func (ctl *VendorController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteVendor(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
