package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/cards/preview", h.previewHandler)
		api.POST("/cards/batch", h.batchHandler)
		api.GET("/qr", h.qrHandler)
	}
}
