package common

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/identity"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/metrics"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state.

// ContextUserKey is where handlers store the resolved caller for the request logger.
const ContextUserKey = "user"

// IdentityFailure maps a Resolver error to an HTTP status, a plain text body
// and a metrics outcome.
func IdentityFailure(r identity.Resolver, err error) (int, string, string) {
	switch errors.Cause(err) {
	case identity.ErrMissingIdentity:
		return http.StatusUnauthorized, fmt.Sprintf("Missing %s.", r.Describe()), metrics.OutcomeMissing
	case identity.ErrMalformedIdentity:
		return http.StatusBadRequest, fmt.Sprintf("Invalid %s format.", r.Describe()), metrics.OutcomeMalformed
	default:
		return http.StatusUnauthorized, fmt.Sprintf("Invalid %s.", r.Describe()), metrics.OutcomeInvalid
	}
}

// AbortIdentity writes the identity failure response and stops the chain.
func AbortIdentity(c *gin.Context, r identity.Resolver, err error) string {
	status, msg, outcome := IdentityFailure(r, err)
	_ = c.Error(err)
	c.Abort()
	c.String(status, "%s", msg)
	return outcome
}

// ServerError writes the generic 500 body used for backend failures.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
}
