package birds

import "github.com/talkincode/catalogd/internal/domain"

// Preset birds with well-known capability sets.

// NewDuck flies low, swims in shallow water and waddles.
func NewDuck(name string) domain.Bird {
	return domain.NewBird(name, "Duck", map[domain.CapabilityKind]domain.Capability{
		domain.CapFly:  {Description: name + " flies at low altitude", Speed: 80},
		domain.CapSwim: {Description: name + " swims gracefully on the water", Speed: 2},
		domain.CapRun:  {Description: name + " waddles along", Speed: 3},
	})
}

// NewEagle flies and walks but never swims.
func NewEagle(name string) domain.Bird {
	return domain.NewBird(name, "Eagle", map[domain.CapabilityKind]domain.Capability{
		domain.CapFly: {Description: name + " soars across the sky", Speed: 120},
		domain.CapRun: {Description: name + " walks on the ground", Speed: 5},
	})
}

// NewPenguin swims deep and shuffles on ice; no flight.
func NewPenguin(name string) domain.Bird {
	return domain.NewBird(name, "Penguin", map[domain.CapabilityKind]domain.Capability{
		domain.CapSwim: {Description: name + " darts underwater", Speed: 50},
		domain.CapRun:  {Description: name + " shuffles across the ice", Speed: 2},
	})
}

// NewOstrich only runs, faster than any other bird on land.
func NewOstrich(name string) domain.Bird {
	return domain.NewBird(name, "Ostrich", map[domain.CapabilityKind]domain.Capability{
		domain.CapRun: {Description: name + " sprints across the savanna", Speed: 70},
	})
}
