package handlers

import (
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/amal-dz/amal/internal/classifier"
	"github.com/amal-dz/amal/internal/convo"
)

type chatReq struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// Chat classifies the message and returns the canned reply for its
// category. Replies are Arabic regardless of the input language until
// the real models are plugged in.
func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid message is required"})
		return
	}
	if utf8.RuneCountInString(req.Message) > h.Cfg.MaxMessageChars {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Message too long (max %d characters)", h.Cfg.MaxMessageChars),
		})
		return
	}

	convID := req.ConversationID
	if convID == "" {
		id, err := convo.NewID()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "عذراً، حدث خطأ في الخادم. يرجى المحاولة مرة أخرى.",
			})
			return
		}
		convID = id
	}

	now := time.Now().UTC()
	historyLen := h.Convos.Append(convID, convo.Message{
		Role:      "user",
		Content:   req.Message,
		Timestamp: now,
	})

	result := classifier.Classify(req.Message, historyLen)

	h.Convos.Append(convID, convo.Message{
		Role:      "bot",
		Content:   result.Response,
		Timestamp: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, gin.H{
		"intent":          result.Intent,
		"confidence":      gin.H{"stage": "keyword_match"},
		"response":        result.Response,
		"language":        "ar",
		"source":          "keyword",
		"conversation_id": convID,
		"timestamp":       now.Format(time.RFC3339),
	})
}

// GetConversation returns the stored history for one conversation.
func (h *Handler) GetConversation(c *gin.Context) {
	id := c.Param("id")

	history, ok := h.Convos.History(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": id,
		"messages":        history,
	})
}

// Health reports liveness and which models are loaded. The keyword
// placeholder has neither model.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":               "healthy",
		"intent_model":         false,
		"rag_model":            false,
		"active_conversations": h.Convos.Len(),
	})
}
