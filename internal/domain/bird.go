package domain

import "fmt"

type CapabilityKind string

const (
	CapFly  CapabilityKind = "fly"
	CapSwim CapabilityKind = "swim"
	CapRun  CapabilityKind = "run"
	CapWalk CapabilityKind = "walk"
)

// Capability is one optional behavior a bird possesses. Speed is km/h for
// fly/run/walk and a depth in meters for swim.
type Capability struct {
	Description string  `json:"description"`
	Speed       float64 `json:"speed"`
}

// Bird is an entity whose valid actions are determined by the capability
// set supplied at construction, not by a static type. Birds are immutable.
type Bird struct {
	Name         string                        `json:"name"`
	Species      string                        `json:"species"`
	Capabilities map[CapabilityKind]Capability `json:"capabilities"`
}

func NewBird(name, species string, capabilities map[CapabilityKind]Capability) Bird {
	if capabilities == nil {
		capabilities = map[CapabilityKind]Capability{}
	}
	return Bird{Name: name, Species: species, Capabilities: capabilities}
}

// Can reports whether the bird possesses the capability. Callers should
// check this before invoking the matching action.
func (b Bird) Can(kind CapabilityKind) bool {
	_, ok := b.Capabilities[kind]
	return ok
}

func (b Bird) MakeSound() string {
	return fmt.Sprintf("%s makes a sound", b.Name)
}
