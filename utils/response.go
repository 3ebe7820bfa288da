package utils

import "github.com/gin-gonic/gin"

func JSONMessage(c *gin.Context, code int, success bool, message string) {
	c.JSON(code, gin.H{"success": success, "message": message})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
