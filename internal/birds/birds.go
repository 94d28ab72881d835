// Package birds implements capability-gated actions over bird entities.
// The presence of a capability in the entity's set, not a static type,
// determines which actions are valid.
package birds

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/talkincode/catalogd/internal/domain"
)

// ErrUnsupported signals an action invoked on a bird that lacks the
// capability. This is a precondition violation; callers should check
// Bird.Can first.
var ErrUnsupported = errors.New("unsupported action for this bird")

var actionPhrase = map[domain.CapabilityKind]string{
	domain.CapFly:  "flies",
	domain.CapSwim: "swims",
	domain.CapRun:  "runs",
	domain.CapWalk: "walks",
}

// Perform invokes a capability action and returns its description.
func Perform(b domain.Bird, kind domain.CapabilityKind) (string, error) {
	capability, ok := b.Capabilities[kind]
	if !ok {
		return "", errors.Wrapf(ErrUnsupported, "%s cannot %s", b.Name, kind)
	}
	if capability.Description != "" {
		return capability.Description, nil
	}
	return fmt.Sprintf("%s %s", b.Name, actionPhrase[kind]), nil
}

// Speed returns the capability's speed (a depth in meters for swim).
func Speed(b domain.Bird, kind domain.CapabilityKind) (float64, error) {
	capability, ok := b.Capabilities[kind]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupported, "%s cannot %s", b.Name, kind)
	}
	return capability.Speed, nil
}

// Actions lists the action descriptions of every capability the bird has,
// in a stable order.
func Actions(b domain.Bird) []string {
	order := []domain.CapabilityKind{domain.CapFly, domain.CapSwim, domain.CapRun, domain.CapWalk}
	out := make([]string, 0, len(b.Capabilities))
	for _, kind := range order {
		if b.Can(kind) {
			desc, _ := Perform(b, kind)
			out = append(out, desc)
		}
	}
	return out
}
