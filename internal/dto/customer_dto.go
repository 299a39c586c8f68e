package dto

import "time"

type CustomerQueryRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionId string `json:"session_id"`
}

type CustomerInputRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Input     string `json:"input" validate:"required"`
}

type CustomerQueryResponse struct {
	SessionId  string `json:"session_id"`
	Response   string `json:"response"`
	NeedsInput bool   `json:"needs_input"`
	InputType  string `json:"input_type,omitempty"`
}

type ConversationMessageResponse struct {
	Sender      string    `json:"sender"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionHistoryResponse struct {
	SessionId       string                        `json:"session_id"`
	Status          string                        `json:"status"`
	DetectedIntents []string                      `json:"detected_intents"`
	Messages        []ConversationMessageResponse `json:"messages"`
}
