package discord

// Embed colors, one per run outcome.
const (
	ColorError   = 0xFF0000
	ColorNew     = 0xFF9900
	ColorAllDone = 0x00FF00
	ColorNormal  = 0x0099FF
)

// fieldValueLimit is a soft ceiling kept under Discord's documented
// 1024-character field maximum.
const fieldValueLimit = 1000

// WebhookMessage is the payload POSTed to a Discord-compatible webhook.
type WebhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds"`
}

// Embed is one bounded message block.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedField is a named text field within an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter labels the sender at the bottom of an embed.
type EmbedFooter struct {
	Text string `json:"text"`
}
