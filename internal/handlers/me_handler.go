package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sess := middleware.GetSession(c)

	var user models.User
	if err := h.db.Preload("Tenant").
		Where("id = ? AND tenant_id = ?", sess.UserID, sess.TenantID).
		First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      user.Role,
		"is_active": user.IsActive,
		"tenant": gin.H{
			"id":          user.Tenant.ID,
			"name":        user.Tenant.Name,
			"public_slug": user.Tenant.PublicSlug,
			"timezone":    user.Tenant.Timezone,
		},
	})
}
