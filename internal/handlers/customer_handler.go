package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/httpresp"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)

	q := h.db.Where("tenant_id = ?", sess.TenantID)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Order("name ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	customer := models.Customer{
		TenantID: sess.TenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Erro ao criar cliente.")
		return
	}

	c.JSON(http.StatusCreated, customer)
}
