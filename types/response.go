package types

type SentenceSection struct {
	Id       int     `json:"id"`
	Span     []int32 `json:"span"`
	Text     string  `json:"text"`
	Result   string  `json:"result"`
	Polarity string  `json:"polarity"`
	Error    string  `json:"error,omitempty"`
}

type ToggleResponse struct {
	DocId     string            `json:"docId"`
	Direction Direction         `json:"direction"`
	Text      string            `json:"text"`
	Sentences []SentenceSection `json:"sentences"`
}
