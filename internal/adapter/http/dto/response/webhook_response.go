package response

// WebhookAckResponse acknowledges a delivered provider event. The provider
// only cares that the delivery was received; processing detail stays in logs.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
