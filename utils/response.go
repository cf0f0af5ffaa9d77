package utils

import "github.com/gin-gonic/gin"

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func JSONDetailError(c *gin.Context, code int, message, detail string) {
	c.JSON(code, gin.H{"error": message, "detail": detail})
}
