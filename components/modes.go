package components

import "fmt"

// CollisionPolicy selects how colliding bubbles exchange velocity.
type CollisionPolicy uint8

const (
	PolicyElastic CollisionPolicy = iota // Mass-weighted normal/tangent exchange
	PolicyAngle                          // Rotate into the contact frame and exchange
	PolicyNone                           // No bubble-bubble interaction
)

var policyNames = [...]string{"elastic", "angle", "none"}

func (p CollisionPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("CollisionPolicy(%d)", p)
}

// Next cycles to the following policy.
func (p CollisionPolicy) Next() CollisionPolicy {
	return CollisionPolicy((int(p) + 1) % len(policyNames))
}

// ParseCollisionPolicy maps a config name to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	for i, name := range policyNames {
		if s == name {
			return CollisionPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown collision policy %q", s)
}

// BoundaryMode selects how far a bubble may cross an edge before reflecting.
type BoundaryMode uint8

const (
	BoundaryRadius     BoundaryMode = iota // Full circle stays inside
	BoundaryHalfRadius                     // Half the radius may cross
	BoundaryPhase                          // A fixed phase distance may cross
)

var boundaryNames = [...]string{"radius", "half_radius", "phase"}

func (m BoundaryMode) String() string {
	if int(m) < len(boundaryNames) {
		return boundaryNames[m]
	}
	return fmt.Sprintf("BoundaryMode(%d)", m)
}

// ParseBoundaryMode maps a config name to a boundary mode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	for i, name := range boundaryNames {
		if s == name {
			return BoundaryMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown boundary mode %q", s)
}

// SpawnMode selects where new bubbles appear.
type SpawnMode uint8

const (
	SpawnRandom SpawnMode = iota // Anywhere inside the canvas
	SpawnCorner                  // Bottom-left corner, launched up and to the right
)

var spawnNames = [...]string{"random", "corner"}

func (m SpawnMode) String() string {
	if int(m) < len(spawnNames) {
		return spawnNames[m]
	}
	return fmt.Sprintf("SpawnMode(%d)", m)
}

// ParseSpawnMode maps a config name to a spawn mode.
func ParseSpawnMode(s string) (SpawnMode, error) {
	for i, name := range spawnNames {
		if s == name {
			return SpawnMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown spawn mode %q", s)
}
