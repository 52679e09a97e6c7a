package kernel

import "fleetrent/internal/pkg/errs"

// SystemActor labels history entries written by the application itself rather
// than a named user.
const SystemActor = "system"

// Actor is a value object naming who performed a lifecycle transition: a
// username, "admin", or SystemActor. Authentication is handled outside this
// service; the engine only records the label it was handed.
type Actor struct {
	name string
}

// NewActor creates an Actor from a non-empty username label.
func NewActor(name string) (Actor, error) {
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor")
	}
	return Actor{name: name}, nil
}

// String returns the actor's label.
func (a Actor) String() string {
	return a.name
}

// Validate reports whether the Actor was properly constructed.
func (a Actor) Validate() error {
	if a.name == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
