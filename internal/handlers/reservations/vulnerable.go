package reservations

import (
	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/metrics"
)

// Vulnerable returns the reservations of whichever user the path names.
// Nothing about the caller is consulted: anyone can enumerate anyone's data
// by changing the path segment.
func (h *Handler) Vulnerable(c *gin.Context) {
	userID := c.Param(UserIDParam)
	h.writeReservations(c, endpointVulnerable, metrics.OutcomeUnchecked, userID)
}
