package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Index describes the service and where to find the GraphQL endpoint.
func (h *RootHandler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":            "Resume GraphQL API",
		"graphql_endpoint":   "/graphql",
		"graphql_playground": "/graphql",
	})
}
