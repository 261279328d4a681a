// Package physics resolves a player-sized box against the block grid.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	Min, Max mgl32.Vec3
}

func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// BlockAABB is the box of cell (x, y, z), which spans [x, x+1) on every axis.
func BlockAABB(x, y, z int) AABB {
	min := mgl32.Vec3{float32(x), float32(y), float32(z)}
	return AABB{Min: min, Max: min.Add(mgl32.Vec3{1, 1, 1})}
}

func (a AABB) Intersects(b AABB) bool {
	return (a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X()) &&
		(a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y()) &&
		(a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z())
}

func (a AABB) Offset(v mgl32.Vec3) AABB {
	return AABB{Min: a.Min.Add(v), Max: a.Max.Add(v)}
}

// Sweep moves box along velocity and reports the fraction of the move at which it
// first touches target, with the normal of the face it hits. hit is false when the
// boxes do not meet within this move.
func Sweep(box, target AABB, velocity mgl32.Vec3) (entry float32, normal [3]int, hit bool) {
	var entries, exits [3]float64

	for axis := 0; axis < 3; axis++ {
		v := float64(velocity[axis])
		bMin, bMax := float64(box.Min[axis]), float64(box.Max[axis])
		tMin, tMax := float64(target.Min[axis]), float64(target.Max[axis])

		switch {
		case v > 0:
			entries[axis] = (tMin - bMax) / v
			exits[axis] = (tMax - bMin) / v
		case v < 0:
			entries[axis] = (tMax - bMin) / v
			exits[axis] = (tMin - bMax) / v
		default:
			if bMax <= tMin || bMin >= tMax {
				return 1, normal, false
			}
			entries[axis] = math.Inf(-1)
			exits[axis] = math.Inf(1)
		}
	}

	enter := math.Max(math.Max(entries[0], entries[1]), entries[2])
	exit := math.Min(math.Min(exits[0], exits[1]), exits[2])

	if enter > exit || enter < 0 || enter > 1 {
		return 1, normal, false
	}

	for axis := 0; axis < 3; axis++ {
		if entries[axis] == enter {
			if velocity[axis] > 0 {
				normal[axis] = -1
			} else {
				normal[axis] = 1
			}
		}
	}
	return float32(enter), normal, true
}
