package domain

import "fmt"

// State holds the current in-memory game state.
type State struct {
	Account   Account
	Container *BusinessContainer
	Menu      Menu
}

// Clone returns a deep copy safe to hand to renderers.
func (s State) Clone() State {
	snap := s
	if s.Container != nil {
		snap.Container = s.Container.Clone()
	}
	snap.Menu = s.Menu.Clone()
	return snap
}

// RebuildMenu refreshes the action menu for the selected business.
func (s *State) RebuildMenu() {
	s.Menu.ClearOptions()
	if s.Container == nil {
		return
	}
	b := s.Container.SelectedBusiness()
	s.Menu.AddOption(fmt.Sprintf("Upgrade for $%.2f", b.UpgradeCost()))
}
