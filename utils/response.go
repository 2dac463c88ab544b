package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, kind, message string) {
	c.JSON(code, gin.H{"success": false, "error": gin.H{"kind": kind, "message": message}})
}
