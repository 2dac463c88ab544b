package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/services"
	"hms-backend/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

type CreateCustomerPayload struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// SearchCustomers (GET /api/customers?name=&phone=)
// Both filters optional; with neither set the whole directory comes back.
func (ctrl *CustomerController) SearchCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.FindCustomers(c.Query("name"), c.Query("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var payload CreateCustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "invalid customer payload: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.CreateCustomer(payload.Name, payload.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// ExportCustomers (GET /api/customers/export) streams the directory as
// an xlsx workbook.
func (ctrl *CustomerController) ExportCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.FindCustomers("", "")
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := utils.CustomersWorkbook(customers)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="customers.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}
