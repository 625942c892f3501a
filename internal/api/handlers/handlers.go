package handlers

import (
	"github.com/PeterJCLaw/sb-vision/internal/services"
)

type Handlers struct {
	RunHandler     *RunHandler
	WebhookHandler *WebhookHandler
}

func NewHandlers(services *services.Services, webhookSecret string) *Handlers {
	return &Handlers{
		RunHandler:     NewRunHandler(&RunHandlerConfig{Services: services}),
		WebhookHandler: NewWebhookHandler(services, webhookSecret),
	}
}
