package domain

// AttachmentTypeLocation attachment type of shared location
const AttachmentTypeLocation = "location"

// Message inbound message body
type Message struct {
	MID         string             `json:"mid,omitempty"`
	Text        string             `json:"text,omitempty"`
	QuickReply  *QuickReplyPayload `json:"quick_reply,omitempty"`
	Attachments []Attachment       `json:"attachments,omitempty"`
}

// QuickReplyPayload payload of tapped quick reply, sent along with the text
type QuickReplyPayload struct {
	Payload string `json:"payload"`
}

// Attachment inbound message attachment
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload image url or location coordinates
type AttachmentPayload struct {
	URL         string       `json:"url,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates of shared location, longitude is named "long" by the platform
type Coordinates struct {
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Long float64 `json:"long" validate:"min=-180,max=180"`
}

// MessageVariant exhaustive variant of inbound message:
// TextMessage, LocationAttachment, ImageAttachment or UnrecognizedAttachment
type MessageVariant interface {
	messageVariant()
}

// TextMessage message with text
type TextMessage struct {
	Text string
}

// LocationAttachment shared location
type LocationAttachment struct {
	Coordinates Coordinates
}

// ImageAttachment attachment with url payload
type ImageAttachment struct {
	URL string
}

// UnrecognizedAttachment any other message shape
type UnrecognizedAttachment struct {
	Type string
}

func (TextMessage) messageVariant()            {}
func (LocationAttachment) messageVariant()     {}
func (ImageAttachment) messageVariant()        {}
func (UnrecognizedAttachment) messageVariant() {}

// Classify message into its variant, text take precedence and only the first attachment is inspected
func (m *Message) Classify() MessageVariant {
	if m.Text != "" {
		return TextMessage{Text: m.Text}
	}
	if len(m.Attachments) == 0 {
		return UnrecognizedAttachment{}
	}

	attachment := m.Attachments[0]
	switch {
	case attachment.Type == AttachmentTypeLocation && attachment.Payload.Coordinates != nil:
		return LocationAttachment{Coordinates: *attachment.Payload.Coordinates}
	case attachment.Payload.Coordinates == nil && attachment.Payload.URL != "":
		return ImageAttachment{URL: attachment.Payload.URL}
	}
	return UnrecognizedAttachment{Type: attachment.Type}
}
