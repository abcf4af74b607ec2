package dto

// SubscribeRequest payload for joining the mailing list.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse confirms a subscription.
type SubscribeResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
