package blackjack

// Phase is the position of a round in the table's state machine. A round
// walks the phases in order and never goes back.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDealing
	PhasePlayersActing
	PhaseDealerReveal
	PhaseDealerActing
	PhaseResolution
	PhaseCleanup
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDealing:
		return "Dealing"
	case PhasePlayersActing:
		return "Players acting"
	case PhaseDealerReveal:
		return "Dealer reveal"
	case PhaseDealerActing:
		return "Dealer acting"
	case PhaseResolution:
		return "Resolution"
	case PhaseCleanup:
		return "Cleanup"
	default:
		return "Unknown"
	}
}
