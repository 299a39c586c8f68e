package dto

// ConversationTurnMessage is the payload published on the in-process
// bus after every orchestrated turn.
type ConversationTurnMessage struct {
	SessionId string `json:"session_id"`
	Intent    string `json:"intent"`
	Step      int    `json:"step"`
	Terminal  bool   `json:"terminal"`
}
