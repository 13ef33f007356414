package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

type StoreController struct {
	Store *state.Container
}

func NewStoreController(store *state.Container) *StoreController {
	return &StoreController{Store: store}
}

// GET /stores
func (ctl *StoreController) List(c *gin.Context) {
	resp.OK(c, ctl.Store.Stores())
}

// GET /stores/:id
func (ctl *StoreController) Get(c *gin.Context) {
	s, err := ctl.Store.Store(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, s)
}

// POST /stores
func (ctl *StoreController) Create(c *gin.Context) {
	var s entity.Store
	if err := c.ShouldBindJSON(&s); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Store.AddStore(s)
	if err != nil {
		fail(c, err)
		return
	}
	created, _ := ctl.Store.Store(id)
	resp.Created(c, created)
}

// PATCH /stores/:id
func (ctl *StoreController) Update(c *gin.Context) {
	var patch state.StorePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateStore(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	s, _ := ctl.Store.Store(c.Param("id"))
	resp.OK(c, s)
}

// DELETE /stores/:id
func (ctl *StoreController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteStore(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
