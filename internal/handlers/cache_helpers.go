package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/infra/cache"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

// invalidateAvailability derruba o cache de disponibilidade dos dias tocados
// pela escrita, sempre no fuso do tenant. Falha em silêncio: o TTL curto
// garante que entradas velhas expiram sozinhas.
func invalidateAvailability(
	c *gin.Context,
	repo domain.Repository,
	av *cache.Availability,
	tenantID string,
	times ...time.Time,
) {
	if av == nil {
		return
	}

	ctx := c.Request.Context()

	tenant, err := repo.GetTenant(ctx, tenantID)
	if err != nil {
		return
	}
	loc := timezone.Location(tenant.Timezone)

	for _, day := range affectedDays(loc, times...) {
		av.Invalidate(ctx, tenantID, day)
	}
}

// affectedDays converte instantes em dias distintos no fuso do tenant. Uma
// remarcação toca dois instantes (horário antigo e novo) que podem cair no
// mesmo dia ou em dias diferentes.
func affectedDays(loc *time.Location, times ...time.Time) []string {
	seen := make(map[string]bool, len(times))
	days := make([]string, 0, len(times))
	for _, t := range times {
		day := t.In(loc).Format("2006-01-02")
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
