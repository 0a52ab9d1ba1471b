package game

import "fmt"

// PlayerAction is a decision returned by a PlayerStrategy
type PlayerAction int

const (
	// Hit draws one more card
	Hit PlayerAction = iota
	// Stand ends the player's turn with the current hand
	Stand
	// Run forfeits immediately: the hand opens with no money moving and
	// the dealer never resolves it
	Run
)

// String returns the string representation of a player action
func (a PlayerAction) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Run:
		return "run"
	default:
		return fmt.Sprintf("PlayerAction(%d)", int(a))
	}
}

// DealerActionType discriminates the dealer action variants
type DealerActionType int

const (
	// DealerHit draws one more card for the dealer
	DealerHit DealerActionType = iota
	// DealerResolve settles a single player's hand against the dealer's
	DealerResolve
)

// DealerAction is a tagged variant: either a bare hit, or a resolution
// carrying the roster index of the player to settle.
type DealerAction struct {
	Type   DealerActionType
	Target int
}

// HitAction returns a dealer hit
func HitAction() DealerAction {
	return DealerAction{Type: DealerHit}
}

// ResolveAction returns a resolution against the player at the given
// roster index
func ResolveAction(target int) DealerAction {
	return DealerAction{Type: DealerResolve, Target: target}
}

// String returns the string representation of a dealer action
func (a DealerAction) String() string {
	switch a.Type {
	case DealerHit:
		return "hit"
	case DealerResolve:
		return fmt.Sprintf("resolve(%d)", a.Target)
	default:
		return fmt.Sprintf("DealerAction(%d)", int(a.Type))
	}
}
