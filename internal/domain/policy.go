package domain

import (
	m "github.com/mouse-blink/covcheck/internal/model"
)

// WriteTarget is what a policy sees about the slot being written.
type WriteTarget struct {
	Actual m.ClassID // element type fixed at creation
	Static m.ClassID // element type of the reference used for the write
}

// WritePolicy decides whether a write is permitted. It never decides
// whether the write is actually well-typed; the checker does that.
type WritePolicy interface {
	Policy() m.Policy
	Permits(rules *RuleEngine, target WriteTarget, value m.ClassID) bool
}

type unsoundPolicy struct{}

func (unsoundPolicy) Policy() m.Policy { return m.PolicyUnsound }

func (unsoundPolicy) Permits(rules *RuleEngine, target WriteTarget, value m.ClassID) bool {
	return rules.CanWriteUnsound(target.Static, value)
}

type soundPolicy struct{}

func (soundPolicy) Policy() m.Policy { return m.PolicySound }

func (soundPolicy) Permits(rules *RuleEngine, target WriteTarget, value m.ClassID) bool {
	return rules.CanWriteSound(target.Actual, value)
}

// PolicyFor returns the write policy implementing p.
func PolicyFor(p m.Policy) (WritePolicy, error) {
	switch p {
	case m.PolicyUnsound:
		return unsoundPolicy{}, nil
	case m.PolicySound:
		return soundPolicy{}, nil
	default:
		return nil, inputError(ErrUnknownPolicy, string(p))
	}
}
