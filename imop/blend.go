// Package imop implements the per-pixel blend policies used when a brush
// is stamped onto a heightmap or a color map.
//
// A policy receives the current value of the target pixel together with the
// brush weight sampled at the same place and returns the new pixel value.
// The brush applicator is generic over the Op interface, so adding a new
// painting tool only means adding a new policy.
package imop

import (
	"fmt"

	"github.com/samber/lo"
)

// The blend modes supported by the painter.
const (
	Add       = "add"
	Subtract  = "subtract"
	Lerp      = "lerp"
	LerpColor = "color"
	Smooth    = "smooth"
)

// Modes returns the list of the supported blend modes.
func Modes() []string {
	return []string{Add, Subtract, Lerp, LerpColor, Smooth}
}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if !lo.Contains(Modes(), opType) {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType

	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}
