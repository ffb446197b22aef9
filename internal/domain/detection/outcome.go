package detection

// Outcome is the result of a trigger.
type Outcome int

const (
	// OutcomeNone means no run took place (engine inactive or already busy).
	OutcomeNone Outcome = iota
	// OutcomeCompleted means every step ran to success.
	OutcomeCompleted
	// OutcomeInterrupted means some step halted the chain.
	OutcomeInterrupted
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "not triggered"
	}
}
