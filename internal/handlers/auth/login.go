package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/common"
)

// Login issues a short-lived bearer token for valid demo credentials.
// KISS flow:
// 1) Validate payload
// 2) Check password against the bcrypt table
// 3) Sign JWT and return token response
func (h *Handler) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Username == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "username and password are required"})
		return
	}

	if !h.creds.Verify(in.Username, in.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_grant", "message": "invalid credentials"})
		return
	}

	signed, err := h.tokens.Issue(in.Username)
	if err != nil {
		common.ServerError(c, err)
		return
	}
	c.Set(common.ContextUserKey, in.Username)

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int(h.tokens.TTL().Seconds()),
	})
}
