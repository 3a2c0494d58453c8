package systems

import (
	"image/color"

	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// mapView converts world X/Z to screen pixels for the top-down arena map.
type mapView struct {
	scale, offX, offY float64
}

func newMapView(ecs *ecs.ECS, screen *ebiten.Image) (mapView, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return mapView{}, false
	}
	arena := components.Level.Get(levelEntry).Arena
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	scale := 0.9 * min(w/arena.Width, h/arena.Depth)
	return mapView{
		scale: scale,
		offX:  (w - arena.Width*scale) / 2,
		offY:  (h - arena.Depth*scale) / 2,
	}, true
}

func (v mapView) point(x, z float64) (float32, float32) {
	return float32(v.offX + x*v.scale), float32(v.offY + z*v.scale)
}

// DrawArena draws the arena from above: blocks shaded by kind, the player
// footprint and its facing.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newMapView(ecs, screen)
	if !ok {
		return
	}

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Block.Get(e)
		c := cfg.Grey
		switch {
		case e.HasComponent(tags.Elevator):
			c = cfg.Yellow
		case b.MinY > cfg.Level.StepOffset:
			c = cfg.LightBlue // overhead
		case b.MaxY <= cfg.Level.StepOffset:
			c = cfg.White // steppable
		}
		fillObject(screen, view, b.Object.X, b.Object.Y, b.Object.W, b.Object.H, c)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		capsule := components.Capsule.Get(e)
		rig := components.CameraRig.Get(e)
		obj := capsule.Object
		fillObject(screen, view, obj.X, obj.Y, obj.W, obj.H, cfg.Blue)

		p := capsule.Position()
		fwd := rig.Forward()
		x0, y0 := view.point(p.X(), p.Z())
		x1, y1 := view.point(p.X()+fwd.X()*2, p.Z()+fwd.Z()*2)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Cyan, false)
	})
}

func fillObject(screen *ebiten.Image, view mapView, x, z, w, d float64, c color.Color) {
	sx, sy := view.point(x, z)
	vector.FillRect(screen, sx, sy, float32(w*view.scale), float32(d*view.scale), c, false)
}
