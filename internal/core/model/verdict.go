package model

type Classification string

const (
	ClassificationVerified Classification = "verified"
	ClassificationFalse    Classification = "false"
	ClassificationPartial  Classification = "partial"
)

// Criterion is one labeled sub-check reported by the judge.
type Criterion struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

type Source struct {
	URL string `json:"url"`
}

// Verdict is the structured judgment for one request. The judge self-reports
// classification and score; the pipeline stores them as received.
type Verdict struct {
	Classification Classification `json:"classification"`
	Score          int            `json:"score"`
	Explanation    string         `json:"explanation"`
	Criteria       []Criterion    `json:"criteria"`
	Sources        []Source       `json:"sources"`
}
