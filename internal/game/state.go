package game

// State is the discrete game-state tag. Exactly one is current; it is
// mutated only by the transition function.
type State int

const (
	StateTitle State = iota
	StateGameplay
	StateGameOver
	StateStageCleared
	StateWin
	StateTitle2
	StateBossGameplay
	StateBossGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateGameplay:
		return "gameplay"
	case StateGameOver:
		return "game_over"
	case StateStageCleared:
		return "stage_cleared"
	case StateWin:
		return "win"
	case StateTitle2:
		return "title2"
	case StateBossGameplay:
		return "boss_gameplay"
	case StateBossGameOver:
		return "boss_game_over"
	default:
		return "unknown"
	}
}

// Combat reports whether the state runs the full entity simulation.
func (s State) Combat() bool {
	return s == StateGameplay || s == StateBossGameplay
}

// PendingNone is the empty value of the pending-transition flag.
const PendingNone State = -1

// transitionKey identifies one legal edge of the state machine.
type transitionKey struct {
	from, to State
}

// transitionEffect constructs the destination state's entities and
// screens. It runs after the outgoing level has been torn down.
type transitionEffect func(s *Simulation) error

// transitions is the legal-transition table. A requested transition not
// present here is rejected and logged; the state stays unchanged.
var transitions = map[transitionKey]transitionEffect{
	{StateTitle, StateGameplay}:  func(s *Simulation) error { return s.loadLevel(0) },
	{StateTitle, StateTitle2}:    func(s *Simulation) error { return s.loadScreen(StateTitle2) },
	{StateTitle2, StateTitle}:    func(s *Simulation) error { return s.loadScreen(StateTitle) },
	{StateTitle2, StateBossGameplay}: func(s *Simulation) error { return s.loadBossLevel() },

	{StateGameplay, StateGameOver}:     func(s *Simulation) error { return s.loadScreen(StateGameOver) },
	{StateGameplay, StateStageCleared}: func(s *Simulation) error { return s.loadScreen(StateStageCleared) },
	{StateGameplay, StateWin}:          func(s *Simulation) error { return s.loadScreen(StateWin) },

	{StateGameOver, StateGameplay}:     func(s *Simulation) error { return s.loadLevel(0) },
	{StateStageCleared, StateGameplay}: func(s *Simulation) error { return s.loadLevel(s.levelIndex + 1) },

	{StateBossGameplay, StateBossGameOver}: func(s *Simulation) error { return s.loadScreen(StateBossGameOver) },
	{StateBossGameplay, StateStageCleared}: func(s *Simulation) error { return s.loadScreen(StateStageCleared) },
	{StateBossGameplay, StateWin}:          func(s *Simulation) error { return s.loadScreen(StateWin) },

	{StateBossGameOver, StateBossGameplay}: func(s *Simulation) error { return s.loadBossLevel() },
}
