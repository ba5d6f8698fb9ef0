package model

// Request is a single verification submission. At least one of the three
// fields must be present. Presence is a plain emptiness check: whitespace-only
// content counts as present and is judged via the vague-content prompt
// fallback rather than rejected.
type Request struct {
	Content string
	URL     string
	Image   []byte
}

func (r Request) IsEmpty() bool {
	return r.Content == "" && r.URL == "" && len(r.Image) == 0
}
