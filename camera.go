package main

import (
	"math"

	"VoxelGolang/config"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

type camera struct {
	yaw, pitch float64

	front mgl32.Vec3
	// orientation is front flattened onto the XZ plane, used for walking.
	orientation mgl32.Vec3
	right       mgl32.Vec3
	up          mgl32.Vec3
}

func newCamera() *camera {
	c := &camera{yaw: 45}
	c.look(0, 0)
	return c
}

// look turns the camera by the given offsets in degrees. Pitch stops short of straight up or down.
func (c *camera) look(yawOffset, pitchOffset float64) {
	c.yaw += yawOffset
	c.pitch = math.Max(-89, math.Min(89, c.pitch+pitchOffset))

	yaw := float64(mgl32.DegToRad(float32(c.yaw)))
	pitch := float64(mgl32.DegToRad(float32(c.pitch)))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.orientation = mgl32.Vec3{
		float32(math.Cos(yaw)),
		0,
		float32(math.Sin(yaw)),
	}.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *camera) view(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(c.front), c.up)
}

func (c *camera) projection(cfg config.Camera, width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(cfg.FOV), aspect, cfg.Near, cfg.Far)
}
