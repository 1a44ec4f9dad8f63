package components

import (
	"errors"
	"time"
)

// ErrDependentComponentNotFound is returned by LoadDependentComponents when a required
// sibling component is missing from the owner
var ErrDependentComponentNotFound = errors.New("dependent component not found")

// Component is one behavior attached to a ComponentOwner.
// The owner drives every method once per lifecycle step
type Component interface {
	// LoadDependentComponents resolves sibling components after all are added
	LoadDependentComponents() error
	Start()
	Update(dt time.Duration)
	// LateUpdate runs after every owner's Update; graphics sync here
	LateUpdate(dt time.Duration)
	Enable()
	Disable()
	IsEnabled() bool
	// Release frees pool handles and observer registrations
	Release()
}

// Base holds the owner and enabled flag. Embed it and override what the component needs
type Base struct {
	owner   *ComponentOwner
	enabled bool
}

func NewBase(owner *ComponentOwner) Base {
	return Base{owner: owner, enabled: true}
}

func (b *Base) Owner() *ComponentOwner { return b.owner }

func (b *Base) LoadDependentComponents() error { return nil }

func (b *Base) Start() {}

func (b *Base) Update(time.Duration) {}

func (b *Base) LateUpdate(time.Duration) {}

func (b *Base) Enable() { b.enabled = true }

func (b *Base) Disable() { b.enabled = false }

func (b *Base) IsEnabled() bool { return b.enabled }

func (b *Base) Release() {}
