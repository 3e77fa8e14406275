package request

import "github.com/mcoot/kohlenschlagen/internal/model"

// CreateTeamRequest is the request body for creating a team
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddPlayerRequest is the request body for adding a player.
// An empty name gets a generated default.
type AddPlayerRequest struct {
	Name string `json:"name,omitempty"`
}

// RenamePlayerRequest is the request body for renaming a player
type RenamePlayerRequest struct {
	Name string `json:"name"`
}

// TurnRequest is the request body for resolving a turn; omitted events are not selected
type TurnRequest struct {
	Stockditsch bool `json:"stockditsch"`
	Windditsch  bool `json:"windditsch"`
	Unterweite  bool `json:"unterweite"`
	KohleWeg    bool `json:"kohleweg"`
	HeideKaputt bool `json:"heidekaputt"`
	StockKaputt bool `json:"stockkaputt"`
}

// Selection converts the request to a model.TurnSelection
func (r TurnRequest) Selection() model.TurnSelection {
	return model.TurnSelection{
		Stockditsch: r.Stockditsch,
		Windditsch:  r.Windditsch,
		Unterweite:  r.Unterweite,
		KohleWeg:    r.KohleWeg,
		HeideKaputt: r.HeideKaputt,
		StockKaputt: r.StockKaputt,
	}
}

// PflichtRequest is the request body for recording a mandatory attempt
type PflichtRequest struct {
	Outcome string `json:"outcome"`
}

// SettingsRequest is the request body for replacing a team's settings.
// Every field is required.
type SettingsRequest struct {
	PointsStockditsch *int     `json:"points_stockditsch"`
	PointsWindditsch  *int     `json:"points_windditsch"`
	PointsUnterweite  *int     `json:"points_unterweite"`
	EuroKohleWeg      *float64 `json:"euro_kohle_weg"`
	EuroHeideKaputt   *float64 `json:"euro_heide_kaputt"`
	EuroStockKaputt   *float64 `json:"euro_stock_kaputt"`
	EuroPflicht       *float64 `json:"euro_pflicht"`
}

// Settings converts the request to model.Settings; ok is false if a field is missing
func (r SettingsRequest) Settings() (s model.Settings, ok bool) {
	if r.PointsStockditsch == nil || r.PointsWindditsch == nil || r.PointsUnterweite == nil ||
		r.EuroKohleWeg == nil || r.EuroHeideKaputt == nil || r.EuroStockKaputt == nil || r.EuroPflicht == nil {
		return model.Settings{}, false
	}
	return model.Settings{
		PointsStockditsch: *r.PointsStockditsch,
		PointsWindditsch:  *r.PointsWindditsch,
		PointsUnterweite:  *r.PointsUnterweite,
		EuroKohleWeg:      *r.EuroKohleWeg,
		EuroHeideKaputt:   *r.EuroHeideKaputt,
		EuroStockKaputt:   *r.EuroStockKaputt,
		EuroPflicht:       *r.EuroPflicht,
	}, true
}

// SettingsRequestFromModel builds a complete request from model settings
func SettingsRequestFromModel(s model.Settings) SettingsRequest {
	return SettingsRequest{
		PointsStockditsch: &s.PointsStockditsch,
		PointsWindditsch:  &s.PointsWindditsch,
		PointsUnterweite:  &s.PointsUnterweite,
		EuroKohleWeg:      &s.EuroKohleWeg,
		EuroHeideKaputt:   &s.EuroHeideKaputt,
		EuroStockKaputt:   &s.EuroStockKaputt,
		EuroPflicht:       &s.EuroPflicht,
	}
}
