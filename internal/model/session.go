package model

// Session is the whole persisted state: every team plus the active one
type Session struct {
	Teams        []*Team `json:"teams"`
	ActiveTeamID *TeamID `json:"activeTeamId"`
}

// NewSession returns an empty session
func NewSession() *Session {
	return &Session{
		Teams: []*Team{},
	}
}

// GetTeam returns the team with the given ID, or nil if not found
func (s *Session) GetTeam(id TeamID) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ActiveTeam returns the active team, or nil if none is set
func (s *Session) ActiveTeam() *Team {
	if s.ActiveTeamID == nil {
		return nil
	}
	return s.GetTeam(*s.ActiveTeamID)
}

// SetActive marks the given team as active
func (s *Session) SetActive(id TeamID) {
	s.ActiveTeamID = &id
}

// EnsureActiveTeam makes the first team active when no valid active team is set
func (s *Session) EnsureActiveTeam() {
	if len(s.Teams) == 0 {
		return
	}
	if s.ActiveTeam() == nil {
		s.SetActive(s.Teams[0].ID)
	}
}
