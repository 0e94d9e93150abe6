package controllers

import (
	"net/http"

	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
)

// MessageController handles HTTP requests for the contact form and
// order-confirmation notices.
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController.
func NewMessageController(svc services.MessageService) *MessageController {
	return &MessageController{messageService: svc}
}

// CreateInbound handles POST /message-from
func (mc *MessageController) CreateInbound(ctx *gin.Context) {
	var req models.CreateMessageFromRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := mc.messageService.RecordInbound(ctx.Request.Context(), &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message sent!"})
}

// CreateOutbound handles POST /message-to
func (mc *MessageController) CreateOutbound(ctx *gin.Context) {
	var req models.CreateMessageToRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := mc.messageService.RecordConfirmation(ctx.Request.Context(), &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message sent!"})
}
