package model

// TurnEvent names one of the selectable events of a turn
type TurnEvent string

const (
	// Point events
	EventStockditsch TurnEvent = "stockditsch"
	EventWindditsch  TurnEvent = "windditsch"
	EventUnterweite  TurnEvent = "unterweite"

	// Penalty events
	EventKohleWeg    TurnEvent = "kohleweg"
	EventHeideKaputt TurnEvent = "heidekaputt"
	EventStockKaputt TurnEvent = "stockkaputt"
)

// AllTurnEvents returns every turn event in display order
func AllTurnEvents() []TurnEvent {
	return []TurnEvent{
		EventStockditsch, EventWindditsch, EventUnterweite,
		EventKohleWeg, EventHeideKaputt, EventStockKaputt,
	}
}

// TurnSelection is the set of events recorded for one turn.
// The zero value is a skipped turn.
type TurnSelection struct {
	Stockditsch bool `json:"stockditsch"`
	Windditsch  bool `json:"windditsch"`
	Unterweite  bool `json:"unterweite"`
	KohleWeg    bool `json:"kohleweg"`
	HeideKaputt bool `json:"heidekaputt"`
	StockKaputt bool `json:"stockkaputt"`
}

// Selected returns the events that are set, in display order
func (s TurnSelection) Selected() []TurnEvent {
	flags := []bool{s.Stockditsch, s.Windditsch, s.Unterweite, s.KohleWeg, s.HeideKaputt, s.StockKaputt}
	var events []TurnEvent
	for i, ev := range AllTurnEvents() {
		if flags[i] {
			events = append(events, ev)
		}
	}
	return events
}

// IsSkip returns true if no event was selected
func (s TurnSelection) IsSkip() bool {
	return len(s.Selected()) == 0
}

// PflichtOutcome is the result of a single mandatory attempt
type PflichtOutcome string

const (
	PflichtSuccess PflichtOutcome = "success"
	PflichtFailure PflichtOutcome = "failure"
)

// Standing is a player's position on the leaderboard
type Standing struct {
	Rank   int
	Player Player
}
