package model

// Settings holds a team's point and penalty values
type Settings struct {
	PointsStockditsch int `json:"pointsStockditsch"`
	PointsWindditsch  int `json:"pointsWindditsch"`
	PointsUnterweite  int `json:"pointsUnterweite"`

	EuroKohleWeg    float64 `json:"euroKohleWeg"`
	EuroHeideKaputt float64 `json:"euroHeideKaputt"`
	EuroStockKaputt float64 `json:"euroStockKaputt"`

	// EuroPflicht is charged once per failed mandatory attempt
	EuroPflicht float64 `json:"euroPflicht"`
}

// DefaultSettings returns the baseline settings for a new team
func DefaultSettings() Settings {
	return Settings{
		PointsStockditsch: 10,
		PointsWindditsch:  5,
		PointsUnterweite:  3,
		EuroKohleWeg:      2,
		EuroHeideKaputt:   5,
		EuroStockKaputt:   5,
		EuroPflicht:       1,
	}
}

// Validate returns ErrInvalidSettings if any value is negative
func (s Settings) Validate() error {
	if s.PointsStockditsch < 0 || s.PointsWindditsch < 0 || s.PointsUnterweite < 0 {
		return ErrInvalidSettings
	}
	if s.EuroKohleWeg < 0 || s.EuroHeideKaputt < 0 || s.EuroStockKaputt < 0 || s.EuroPflicht < 0 {
		return ErrInvalidSettings
	}
	return nil
}
