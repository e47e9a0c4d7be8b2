package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/common"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/metrics"
)

// Secure returns the caller's own reservations.
// Order of checks matters and none of the rejections touch the store:
// 1) no credential          -> 401
// 2) credential not text    -> 400
// 3) caller != path user id -> 403
// 4) lookup by the resolved caller id -> 200
func (h *Handler) Secure(c *gin.Context) {
	requested := c.Param(UserIDParam)

	current, err := h.resolver.Resolve(c.Request)
	if err != nil {
		outcome := common.AbortIdentity(c, h.resolver, err)
		metrics.ObserveDecision(endpointSecure, outcome)
		return
	}
	c.Set(common.ContextUserKey, current)

	if current != requested {
		metrics.ObserveDecision(endpointSecure, metrics.OutcomeForbidden)
		c.Abort()
		c.String(http.StatusForbidden,
			"Unauthorized access. You (User '%s') cannot access reservations for User '%s'.",
			current, requested)
		return
	}

	// Look up by the verified identity, not the raw path value.
	h.writeReservations(c, endpointSecure, metrics.OutcomeAllowed, current)
}
