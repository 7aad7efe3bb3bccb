package handlers

import (
	"net/http"

	"ndis_connect/config"

	"github.com/gin-gonic/gin"
)

// WebConfigHandler serves the web SDK configuration, the same document
// Firebase Hosting serves at /__/firebase/init.json.
func WebConfigHandler(cfg config.FirebaseConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=3600")
		c.JSON(http.StatusOK, cfg)
	}
}
