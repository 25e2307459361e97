package handlers

import (
	"encoding/json"
	"log"

	"lpaflow/internal/models"
	"lpaflow/internal/services/payment"
	"lpaflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

// WebhookHandler receives Stripe webhook deliveries. Signature verification
// happens here so the payment service only ever sees authentic events.
type WebhookHandler struct {
	paymentService payment.Service
	webhookSecret  string
}

func NewWebhookHandler(paymentService payment.Service, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		webhookSecret:  webhookSecret,
	}
}

// HandleStripe verifies and dispatches a Stripe event. Unrecognized event
// types are acknowledged without action so Stripe stops retrying them.
func (h *WebhookHandler) HandleStripe(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return response.BadRequest(c, "Missing Stripe signature")
	}

	event, err := webhook.ConstructEvent(c.Body(), signature, h.webhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return response.BadRequest(c, "Invalid webhook signature")
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return response.BadRequest(c, "Invalid event payload")
		}

		var eventData models.JSON
		if err := json.Unmarshal(event.Data.Raw, &eventData); err != nil {
			eventData = models.JSON{}
		}

		if err := h.paymentService.CompleteCheckout(c.Context(), &session, eventData); err != nil {
			log.Printf("Failed to process checkout completion for session %s: %v", session.ID, err)
			return response.ServerError(c, "Failed to process payment")
		}

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return response.BadRequest(c, "Invalid event payload")
		}

		if err := h.paymentService.MarkFailed(c.Context(), intent.ID); err != nil {
			log.Printf("Failed to record payment failure for intent %s: %v", intent.ID, err)
			return response.ServerError(c, "Failed to process payment failure")
		}

	default:
		log.Printf("Unhandled webhook event type: %s", event.Type)
	}

	return c.JSON(fiber.Map{"received": true})
}
