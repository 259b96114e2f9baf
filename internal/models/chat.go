package models

// ChatRequest is any JSON object posted to the bot service.
type ChatRequest map[string]any

type ChatResponse struct {
	Response string `json:"response" example:"Hello! This is a placeholder response from the bot service."`
}
