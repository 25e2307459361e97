package checkout

// Result is returned to the client so it can redirect to the hosted page.
type Result struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
