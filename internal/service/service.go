package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"botnetworth/internal/clock"
	"botnetworth/internal/commands"
	"botnetworth/internal/config"
	"botnetworth/internal/domain"
	"botnetworth/internal/events"
)

// GameService owns the game state. The tick loop mutates it; GetState and
// Stats may be called from other goroutines.
type GameService struct {
	mu     sync.Mutex
	cfg    config.Config
	clk    clock.Clock
	st     domain.State
	nextID uint64
	log    zerolog.Logger
}

// Stats is a point-in-time summary of the economy.
type Stats struct {
	At               time.Time
	Cash             float64
	TotalLevels      int
	RevenuePerSecond float64
}

func NewGameService(cfg config.Config, clk clock.Clock, log zerolog.Logger) (*GameService, error) {
	businesses := make([]domain.Business, 0, len(cfg.Businesses))
	for _, spec := range cfg.Businesses {
		businesses = append(businesses, domain.NewBusiness(spec.Name, spec.Cycle, spec.Payout, spec.UpgradeCost))
	}
	container, err := domain.ContainerFrom(cfg.Screen.GridX, cfg.Screen.GridY, businesses)
	if err != nil {
		return nil, fmt.Errorf("build businesses: %w", err)
	}

	s := &GameService{
		cfg: cfg,
		clk: clk,
		st: domain.State{
			Account:   domain.NewAccount(cfg.Game.StartingCash),
			Container: container,
			Menu:      domain.NewMenu(cfg.Screen.MenuX, cfg.Screen.MenuY),
		},
		log: log.With().Str("component", "service").Logger(),
	}
	s.st.RebuildMenu()
	return s, nil
}

// GetState returns a deep copy of the current state.
func (s *GameService) GetState() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Clone()
}

// Tick advances every business by elapsed and credits completed cycles to
// the account. One CyclePaid event is returned per payout.
func (s *GameService) Tick(elapsed time.Duration) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	payouts := s.st.Container.Progress(elapsed)
	if len(payouts) == 0 {
		return nil
	}

	out := make([]events.Event, 0, len(payouts))
	for _, p := range payouts {
		s.st.Account.Earn(p.Amount)
		out = append(out, s.event("", events.EventTypeCyclePaid, events.CyclePaidData{
			Business:  p.Name,
			Amount:    p.Amount,
			CashAfter: s.st.Account.Cash(),
		}))
		s.log.Debug().
			Str("business", p.Name).
			Float64("amount", p.Amount).
			Float64("cash", s.st.Account.Cash()).
			Msg("cycle paid")
	}
	return out
}

// Execute applies cmd and reports the resulting events and whether the
// game should stop.
func (s *GameService) Execute(cmd commands.Command) ([]events.Event, bool) {
	switch c := cmd.(type) {
	case commands.Quit:
		s.log.Info().Str("command_id", c.ID).Msg("quit requested")
		return nil, true
	case commands.Upgrade:
		return s.upgrade(c), false
	case commands.Move:
		return s.move(c), false
	default:
		return nil, false
	}
}

func (s *GameService) upgrade(c commands.Upgrade) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.st.Container.SelectedBusiness()
	cost := b.UpgradeCost()
	if !domain.Upgrade(&s.st.Account, b) {
		s.log.Debug().
			Str("business", b.Name).
			Float64("cost", cost).
			Float64("cash", s.st.Account.Cash()).
			Msg("upgrade not affordable")
		return []events.Event{s.event(c.ID, events.EventTypeUpgradeRejected, events.UpgradeRejectedData{
			Business: b.Name,
			Cost:     cost,
			Cash:     s.st.Account.Cash(),
		})}
	}

	s.st.RebuildMenu()
	s.log.Info().
		Str("business", b.Name).
		Int("level", b.Level()).
		Float64("cost", cost).
		Float64("cash", s.st.Account.Cash()).
		Msg("business upgraded")
	return []events.Event{s.event(c.ID, events.EventTypeBusinessUpgraded, events.BusinessUpgradedData{
		Business:  b.Name,
		Level:     b.Level(),
		Cost:      cost,
		CashAfter: s.st.Account.Cash(),
	})}
}

func (s *GameService) move(c commands.Move) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.st.Container.Selected()
	if !s.st.Container.Select(c.Direction) {
		return nil
	}
	s.st.RebuildMenu()
	return []events.Event{s.event(c.ID, events.EventTypeSelectionMoved, events.SelectionMovedData{
		Direction: c.Direction.String(),
		From:      from,
		To:        s.st.Container.Selected(),
	})}
}

// Stats summarises the current economy.
func (s *GameService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{At: s.clk.Now(), Cash: s.st.Account.Cash()}
	for _, b := range s.st.Container.Businesses() {
		st.TotalLevels += b.Level()
		st.RevenuePerSecond += b.Revenue() / b.Cycle().Seconds()
	}
	return st
}

// event must be called with s.mu held.
func (s *GameService) event(commandID string, t events.EventType, data any) events.Event {
	s.nextID++
	return events.New(s.nextID, s.clk.Now(), commandID, t, data)
}
