package handlers

import (
	"net/http"

	"trimly/models"
	"trimly/services/customer"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes customer CRUD endpoints.
type CustomerHandler struct {
	Service customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateCustomer(shopID, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	cust, err := h.Service.GetCustomer(shopID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Customer not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	customers, err := h.Service.ListCustomers(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	cust.ID = c.Param("id")
	cust.ShopID = shopID

	if err := h.Service.UpdateCustomer(&cust); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	if err := h.Service.DeleteCustomer(shopID, c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
