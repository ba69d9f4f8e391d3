package dto

import "time"

type ChatInput struct {
	Message  string `json:"message" binding:"required"`
	ImageURL string `json:"image_url"`
}

type BotResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
