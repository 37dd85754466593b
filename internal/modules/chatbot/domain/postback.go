package domain

// Known postback payload, matched case sensitive
const (
	PostbackYes     = "yes"
	PostbackNo      = "no"
	PostbackInitial = "InitialUserMessage"
)

// Postback inbound button click event
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}

// PostbackVariant exhaustive variant of postback: KnownPostback or UnknownPostback
type PostbackVariant interface {
	postbackVariant()
}

// KnownPostback payload one of PostbackYes, PostbackNo, PostbackInitial
type KnownPostback struct {
	Payload string
}

// UnknownPostback payload outside of known set
type UnknownPostback struct {
	Payload string
}

func (KnownPostback) postbackVariant()   {}
func (UnknownPostback) postbackVariant() {}

// Classify postback payload
func (p *Postback) Classify() PostbackVariant {
	switch p.Payload {
	case PostbackYes, PostbackNo, PostbackInitial:
		return KnownPostback{Payload: p.Payload}
	}
	return UnknownPostback{Payload: p.Payload}
}
