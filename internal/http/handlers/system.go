package handlers

import (
	"net/http"

	intconfig "flextrack/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "flextrack"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "banco indisponível", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": "ok"})
}
