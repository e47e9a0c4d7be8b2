package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/handlers/common"
)

// Me echoes the identity the configured resolver sees for this request.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request)
	if err != nil {
		common.AbortIdentity(c, h.resolver, err)
		return
	}
	c.Set(common.ContextUserKey, user)
	c.JSON(http.StatusOK, gin.H{"user_id": user})
}
