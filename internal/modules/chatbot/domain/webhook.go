package domain

// ObjectPage webhook object of page subscription
const ObjectPage = "page"

// WebhookRequest body of webhook event delivery
type WebhookRequest struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// IsPageSubscription check delivery come from page subscription
func (w *WebhookRequest) IsPageSubscription() bool {
	return w.Object == ObjectPage
}

// WebhookEntry single entry of webhook delivery
type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// FirstEvent return first messaging event of entry, only one event is delivered per entry
func (e *WebhookEntry) FirstEvent() (MessagingEvent, bool) {
	if len(e.Messaging) == 0 {
		return MessagingEvent{}, false
	}
	return e.Messaging[0], true
}

// Participant sender or recipient of messaging event
type Participant struct {
	ID string `json:"id"`
}

// MessagingEvent inbound event, either message or postback
type MessagingEvent struct {
	Sender    Participant `json:"sender"`
	Recipient Participant `json:"recipient"`
	Timestamp int64       `json:"timestamp"`
	Message   *Message    `json:"message,omitempty"`
	Postback  *Postback   `json:"postback,omitempty"`
}

// EventKind type
type EventKind string

const (
	// KindMessage event
	KindMessage EventKind = "message"
	// KindPostback event
	KindPostback EventKind = "postback"
	// KindUnknown event carry neither message nor postback
	KindUnknown EventKind = "unknown"
)

// Kind classify messaging event
func (e *MessagingEvent) Kind() EventKind {
	switch {
	case e.Message != nil:
		return KindMessage
	case e.Postback != nil:
		return KindPostback
	}
	return KindUnknown
}

// WebhookJob accepted webhook delivery waiting to be routed
type WebhookJob struct {
	RequestID string
	Request   WebhookRequest
}
