package chat

import (
	"net/http"

	chatService "miamiam-bot/internal/core/chat"
	"miamiam-bot/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 對話相關處理器
type Handler struct {
	sessions  *chatService.SessionStore
	responder *chatService.Responder
}

// NewHandler 創建對話處理器
func NewHandler(sessions *chatService.SessionStore, responder *chatService.Responder) *Handler {
	return &Handler{
		sessions:  sessions,
		responder: responder,
	}
}

// MessageRequest 一則使用者訊息
type MessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

// MessageResponse 機器人回覆
type MessageResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}

// ResetRequest 重置請求
type ResetRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
}

// HandleMessage 處理 POST /api/v1/chat/message
func (h *Handler) HandleMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid message request",
			zap.Error(err),
			zap.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	session := h.sessions.GetOrCreate(req.ConversationID)
	reply := h.responder.GenerateResponse(c.Request.Context(), session, req.Message)

	common.LogInfo("訊息已處理",
		zap.String("conversation_id", session.ID),
		zap.String("message", req.Message),
		zap.String("reply", reply),
	)

	c.JSON(http.StatusOK, MessageResponse{
		ConversationID: session.ID,
		Reply:          reply,
	})
}

// HandleStart 處理 GET /api/v1/chat/start：開新對話並回傳問候語
func (h *Handler) HandleStart(c *gin.Context) {
	session := h.sessions.GetOrCreate("")

	c.JSON(http.StatusOK, MessageResponse{
		ConversationID: session.ID,
		Reply:          chatService.GreetingText,
	})
}

// HandleReset 處理 POST /api/v1/chat/reset：清空指定對話的偏好
func (h *Handler) HandleReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "conversation_id is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	session, ok := h.sessions.Get(req.ConversationID)
	if !ok {
		c.JSON(common.ErrSessionNotFound.Status, gin.H{
			"error": common.ErrSessionNotFound.Message,
			"code":  common.ErrSessionNotFound.Code,
		})
		return
	}

	session.Lock()
	session.Reset()
	session.Unlock()

	common.LogInfo("對話已重置", zap.String("conversation_id", req.ConversationID))

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": req.ConversationID,
		"status":          "reset",
	})
}
