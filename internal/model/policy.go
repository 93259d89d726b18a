package model

import "fmt"

// Policy names the write-check rule a run is executed under.
type Policy string

const (
	// PolicyUnsound checks writes against the static element type at the access site only.
	PolicyUnsound Policy = "unsound"
	// PolicySound checks writes against the array's actual element type.
	PolicySound Policy = "sound"
)

// AllPolicies lists every known policy in display order.
var AllPolicies = []Policy{PolicyUnsound, PolicySound}

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(name); p {
	case PolicyUnsound, PolicySound:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q (want %q or %q)", name, PolicyUnsound, PolicySound)
	}
}
