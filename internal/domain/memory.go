package domain

// ReinforceResults carries only the reinforcement keys the caller supplied.
// A nil slice means the key was absent; an empty slice means zero values.
type ReinforceResults struct {
	IDs       []string
	Distances []float64
}

func (r ReinforceResults) HasIDs() bool {
	return r.IDs != nil
}

func (r ReinforceResults) HasDistances() bool {
	return r.Distances != nil
}

func (r ReinforceResults) Empty() bool {
	return !r.HasIDs() && !r.HasDistances()
}

type Stats struct {
	Count           int     `json:"count"`
	Capacity        int     `json:"capacity"`
	Tick            int64   `json:"tick"`
	TotalHeat       float64 `json:"total_heat"`
	MeanHeat        float64 `json:"mean_heat"`
	Churn           float64 `json:"churn"`
	NovelTotal      int64   `json:"novel_total"`
	PrunedTotal     int64   `json:"pruned_total"`
	ExpiredTotal    int64   `json:"expired_total"`
	ReinforcedTotal int64   `json:"reinforced_total"`
}

type EventKind string

const (
	EventNovel             EventKind = "novel"
	EventHabituated        EventKind = "habituated"
	EventExpired           EventKind = "expired"
	EventPruned            EventKind = "pruned"
	EventDiffused          EventKind = "diffused"
	EventReinforced        EventKind = "reinforced"
	EventFrontierExhausted EventKind = "frontier_exhausted"
)

// Event is a notable occurrence queued by a manager until drained.
type Event struct {
	Kind  EventKind `json:"type"`
	Tick  int64     `json:"tick"`
	IDs   []string  `json:"ids,omitempty"`
	Value float64   `json:"value,omitempty"`
}

type RankedEntry struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Heat  float64 `json:"heat"`
	TTL   float64 `json:"ttl"`
	Score float64 `json:"score"`
}
