package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/common"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/identity"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/metrics"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/reservation"
)

// Package reservations provides the two reservation lookup endpoints.
// KISS: keep types small, behavior explicit, and files focused.
//
// - vulnerable.go: Handler.Vulnerable (no ownership check)
// - secure.go:     Handler.Secure (caller must own the requested reservations)

const (
	endpointVulnerable = "vulnerable"
	endpointSecure     = "secure"

	// UserIDParam is the path parameter both routes are registered with.
	UserIDParam = "userId"
)

// Handler wires reservation endpoints to the store and identity resolver.
type Handler struct {
	store    reservation.Store
	resolver identity.Resolver
	log      *zap.Logger
}

// NewHandler returns a new reservations handler.
func NewHandler(st reservation.Store, r identity.Resolver, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: st, resolver: r, log: log}
}

// Register mounts both endpoints on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/vulnerable/users/:"+UserIDParam, h.Vulnerable)
	r.GET("/secure/users/:"+UserIDParam, h.Secure)
}

// writeReservations looks up userID and writes the JSON array. A store error
// is the only failure; an unknown user yields [].
func (h *Handler) writeReservations(c *gin.Context, endpoint, outcome, userID string) {
	rs, err := h.store.Get(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("reservation lookup failed",
			zap.String("endpoint", endpoint),
			zap.String("user_id", userID),
			zap.Error(err))
		metrics.ObserveDecision(endpoint, metrics.OutcomeStoreError)
		common.ServerError(c, err)
		return
	}
	if rs == nil {
		rs = []reservation.Reservation{}
	}
	metrics.ObserveDecision(endpoint, outcome)
	c.JSON(http.StatusOK, rs)
}
