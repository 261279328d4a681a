package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultWidth    = 0.6
	eyeToFeet       = 1.5
	eyeToHead       = 0.25
	resolvePasses   = 3
	contactEpsilon  = 0.001
	airResistance   = 0.93
	DefaultGravity  = 0.02
	DefaultDamping  = 0.35
	DefaultJumpKick = 0.3
)

// SolidFunc reports whether the cell at (x, y, z) blocks movement.
type SolidFunc func(x, y, z int) bool

// Body is a player box anchored at eye height.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Width    float32
	OnGround bool
}

func NewBody(position mgl32.Vec3) *Body {
	return &Body{Position: position, Width: DefaultWidth}
}

func (b *Body) Box() AABB {
	half := b.Width / 2
	box := NewAABB(
		mgl32.Vec3{-half, -eyeToFeet, -half},
		mgl32.Vec3{half, eyeToHead, half},
	)
	return box.Offset(b.Position)
}

// Step applies gravity, clips the velocity against solid cells and moves the body.
// Pass gravity 0 for free flight with collisions.
func (b *Body) Step(solid SolidFunc, gravity float32) {
	b.OnGround = false
	b.Velocity[1] -= gravity

	for pass := 0; pass < resolvePasses; pass++ {
		box := b.Box()
		minEntry := float32(math.Inf(1))
		var minNormal [3]int
		found := false

		forEachCell(box, b.Velocity, func(x, y, z int) {
			if !solid(x, y, z) {
				return
			}
			entry, normal, hit := Sweep(box, BlockAABB(x, y, z), b.Velocity)
			if hit && entry < minEntry {
				minEntry, minNormal, found = entry, normal, true
			}
		})
		if !found {
			break
		}

		minEntry -= contactEpsilon
		for axis := 0; axis < 3; axis++ {
			if minNormal[axis] == 0 {
				continue
			}
			b.Position[axis] += b.Velocity[axis] * minEntry
			b.Velocity[axis] = 0
			if axis == 1 && minNormal[axis] > 0 {
				b.OnGround = true
			}
		}
	}

	b.Position = b.Position.Add(b.Velocity)
}

// forEachCell visits every cell touched by box over the move.
func forEachCell(box AABB, velocity mgl32.Vec3, fn func(x, y, z int)) {
	var lo, hi [3]int
	for axis := 0; axis < 3; axis++ {
		min := float64(box.Min[axis])
		max := float64(box.Max[axis])
		if v := float64(velocity[axis]); v < 0 {
			min += v
		} else {
			max += v
		}
		lo[axis] = int(math.Floor(min)) - 1
		hi[axis] = int(math.Floor(max)) + 1
	}
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				fn(x, y, z)
			}
		}
	}
}

// Damp slows the body down; in the air horizontal drag is weaker.
func (b *Body) Damp(damping float32, flying bool) {
	horiz := 1 - damping
	if !b.OnGround && !flying {
		horiz = 1 - damping*airResistance
	}
	b.Velocity[0] *= horiz
	b.Velocity[2] *= horiz
	if flying {
		b.Velocity[1] *= 1 - damping
	}
}

// Jump kicks the body upward when it is standing on something.
func (b *Body) Jump(kick float32) bool {
	if !b.OnGround {
		return false
	}
	b.Velocity[1] += kick
	b.OnGround = false
	return true
}
