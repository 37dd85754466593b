package domain

// Outbound constants of send api
const (
	MessagingTypeResponse  = "RESPONSE"
	ContentTypeLocation    = "location"
	AttachmentTypeTemplate = "template"
	TemplateTypeGeneric    = "generic"
	ButtonTypePostback     = "postback"
)

// OutboundMessage response payload, exactly one of: text, text with quick replies, or template attachment
type OutboundMessage struct {
	Text         string              `json:"text,omitempty"`
	QuickReplies []QuickReply        `json:"quick_replies,omitempty"`
	Attachment   *OutboundAttachment `json:"attachment,omitempty"`
}

// QuickReply prompt requesting specific input from user
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
}

// OutboundAttachment template attachment
type OutboundAttachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

// TemplatePayload generic template
type TemplatePayload struct {
	TemplateType string            `json:"template_type"`
	Elements     []TemplateElement `json:"elements"`
}

// TemplateElement single card of generic template
type TemplateElement struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// Button template button
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// SendRequest envelope of send api
type SendRequest struct {
	Recipient     Participant     `json:"recipient"`
	MessagingType string          `json:"messaging_type,omitempty"`
	Message       OutboundMessage `json:"message"`
}

// NewTextMessage constructor
func NewTextMessage(text string) OutboundMessage {
	return OutboundMessage{Text: text}
}

// NewLocationPromptMessage text with a single location quick reply
func NewLocationPromptMessage(text string) OutboundMessage {
	return OutboundMessage{
		Text:         text,
		QuickReplies: []QuickReply{{ContentType: ContentTypeLocation}},
	}
}

// NewGenericTemplateMessage single element generic template
func NewGenericTemplateMessage(element TemplateElement) OutboundMessage {
	return OutboundMessage{
		Attachment: &OutboundAttachment{
			Type: AttachmentTypeTemplate,
			Payload: TemplatePayload{
				TemplateType: TemplateTypeGeneric,
				Elements:     []TemplateElement{element},
			},
		},
	}
}

// NewSendRequest wrap response into send api envelope
func NewSendRequest(senderID string, message OutboundMessage) SendRequest {
	return SendRequest{
		Recipient:     Participant{ID: senderID},
		MessagingType: MessagingTypeResponse,
		Message:       message,
	}
}
