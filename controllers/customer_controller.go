package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/utils"
)

type CustomerController struct {
	Store *state.Container
}

func NewCustomerController(store *state.Container) *CustomerController {
	return &CustomerController{Store: store}
}

// GET /customers
func (ctl *CustomerController) List(c *gin.Context) {
	customers := ctl.Store.Customers()
	if segment := c.Query("segment"); segment != "" {
		filtered := make([]entity.Customer, 0, len(customers))
		for _, cu := range customers {
			if string(cu.Segment) == segment {
				filtered = append(filtered, cu)
			}
		}
		customers = filtered
	}
	resp.OK(c, customers)
}

// GET /customers/:id
func (ctl *CustomerController) Get(c *gin.Context) {
	cu, err := ctl.Store.Customer(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cu)
}

// POST /customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var cu entity.Customer
	if err := c.ShouldBindJSON(&cu); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Store.AddCustomer(cu)
	created, _ := ctl.Store.Customer(id)
	resp.Created(c, created)
}

// PATCH /customers/:id
func (ctl *CustomerController) Update(c *gin.Context) {
	var patch state.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Store.UpdateCustomer(c.Param("id"), patch); err != nil {
		fail(c, err)
		return
	}
	cu, _ := ctl.Store.Customer(c.Param("id"))
	resp.OK(c, cu)
}

// DELETE /customers/:id
func (ctl *CustomerController) Delete(c *gin.Context) {
	if err := ctl.Store.DeleteCustomer(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// GET /customers/export
func (ctl *CustomerController) Export(c *gin.Context) {
	records := make([]utils.Record, 0)
	for _, cu := range ctl.Store.Customers() {
		records = append(records, utils.Record{
			{Key: "Name", Value: cu.Name},
			{Key: "Phone", Value: cu.Phone},
			{Key: "Email", Value: cu.Email},
			{Key: "Segment", Value: string(cu.Segment)},
			{Key: "Total Orders", Value: strconv.Itoa(cu.TotalOrders)},
			{Key: "Lifetime Value", Value: strconv.FormatFloat(cu.LifetimeValue, 'f', 2, 64)},
			{Key: "Avg Order Value", Value: strconv.FormatFloat(cu.AverageOrderValue, 'f', 2, 64)},
			{Key: "Tags", Value: strings.Join(cu.Tags, "; ")},
		})
	}
	sendDelimited(c, "customers.csv", records)
}
