package response

import "github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"

type ChatResponse struct {
	Response moderation.Label   `json:"response" enums:"flagged,okay" example:"okay"`
	History  moderation.History `json:"history" swaggertype:"array,array,string"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"internal server error"`
}
