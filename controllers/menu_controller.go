package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type MenuController struct {
	Store *state.Container
}

func NewMenuController(store *state.Container) *MenuController {
	return &MenuController{Store: store}
}

// GET /menu/items
func (ctl *MenuController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.MenuItems())
}

// GET /menu/items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.Store.MenuItem(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu/items
func (ctl *MenuController) Create(c *gin.Context) {
	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddMenuItem(req)
	resp.Created(c, gin.H{"id": id})
}

// PATCH /menu/items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var patch state.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateMenuItem(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}

// DELETE /menu/items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteMenuItem(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /menu/items/:id/availability
func (ctl *MenuController) SetAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.SetMenuItemAvailability(c.Param("id"), *req.Available); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}
