package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type CategoryController struct {
	Store *state.Container
}

func NewCategoryController(store *state.Container) *CategoryController {
	return &CategoryController{Store: store}
}

// GET /menu/categories
func (ctl *CategoryController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.Categories())
}

// POST /menu/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req entity.MenuCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddCategory(req)
	resp.Created(c, gin.H{"id": id})
}

// PATCH /menu/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	var patch state.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateCategory(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}

// DELETE /menu/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteCategory(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /menu/categories/reorder
func (ctl *CategoryController) Reorder(c *gin.Context) {
	var req struct {
		SourceID string `json:"sourceId" binding:"required"`
		TargetID string `json:"targetId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.ReorderCategories(req.SourceID, req.TargetID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ctl.Store.Categories())
}

// POST /menu/categories/:id/items
func (ctl *CategoryController) AssignItem(c *gin.Context) {
	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.AssignMenuItem(c.Param("id"), req.ItemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": true})
}

// DELETE /menu/categories/:id/items/:itemId
func (ctl *CategoryController) UnassignItem(c *gin.Context) {
	if err := ctl.Store.UnassignMenuItem(c.Param("id"), c.Param("itemId")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": false})
}
