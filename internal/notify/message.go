package notify

// Well-known topic names.
const (
	TopicAuth        = "auth"
	TopicInventory   = "inventory"
	TopicActiveUsers = "active-users"
)

// Message types understood by dashboard clients.
const (
	TypeSuccess = "SUCCESS"
	TypeFailure = "FAILURE"
	TypeInfo    = "INFO"
)

// Message is a single notification. Messages are published and forgotten;
// there is no history or replay.
type Message struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
