// Package physics is the host collision layer for the motion controller. The
// resolv space holds the top-down footprint of every obstacle (resolv X is
// world X, resolv Y is world Z); heights live on the Block attached to each
// object.
package physics

import (
	"github.com/automoto/tiefling/tags"
	"github.com/solarlune/resolv"
)

// Block is an axis-aligned obstacle spanning [MinY, MaxY] vertically.
type Block struct {
	Object *resolv.Object
	MinY   float64
	MaxY   float64
}

// NewBlock creates a block whose footprint starts at (x, z) and spans w by d.
// The object is not added to any space.
func NewBlock(x, z, w, d, minY, maxY float64) *Block {
	b := &Block{MinY: minY, MaxY: maxY}
	b.Object = resolv.NewObject(x, z, w, d, tags.ResolvSolid)
	b.Object.Data = b
	return b
}

// SetVertical moves the block's vertical extent.
func (b *Block) SetVertical(minY, maxY float64) {
	b.MinY, b.MaxY = minY, maxY
}

func blockOf(o *resolv.Object) (*Block, bool) {
	b, ok := o.Data.(*Block)
	return b, ok
}

// footprintsOverlap reports whether a, offset by (dx, dz), penetrates b by
// more than margin on both axes. Touching edges do not count.
func footprintsOverlap(a *resolv.Object, dx, dz float64, b *resolv.Object, margin float64) bool {
	ax, az := a.X+dx, a.Y+dz
	return ax < b.X+b.W-margin && ax+a.W > b.X+margin && az < b.Y+b.H-margin && az+a.H > b.Y+margin
}
