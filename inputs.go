package main

import (
	"log/slog"

	"VoxelGolang/physics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func (a *app) onKey(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		window.SetShouldClose(true)
	case glfw.KeyF1:
		a.lockCursor(!a.cursorLocked)
	case glfw.KeyF3:
		a.showDebug = !a.showDebug
	case glfw.KeyF:
		a.flying = !a.flying
		a.body.Velocity = mgl32.Vec3{}
		slog.Debug("movement mode", "flying", a.flying)
	}
}

func (a *app) lockCursor(locked bool) {
	a.cursorLocked = locked
	a.firstMouse = true
	if locked {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		return
	}
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func (a *app) onFocus(window *glfw.Window, focused bool) {
	if !focused && a.cursorLocked {
		a.lockCursor(false)
	}
}

func (a *app) onResize(window *glfw.Window, width, height int) {
	a.width, a.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (a *app) onCursorPos(window *glfw.Window, xPos, yPos float64) {
	if !a.cursorLocked {
		return
	}
	if a.firstMouse {
		a.lastX, a.lastY = xPos, yPos
		a.firstMouse = false
	}

	sensitivity := float64(a.cfg.Camera.Sensitivity)
	xoffset := (xPos - a.lastX) * sensitivity
	yoffset := (a.lastY - yPos) * sensitivity // window y grows downward
	a.lastX, a.lastY = xPos, yPos

	a.camera.look(xoffset, yoffset)
}

func (a *app) onMouseButton(window *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if !a.cursorLocked {
		a.lockCursor(true)
		return
	}
	if button == glfw.MouseButtonLeft {
		a.breakBlock()
	}
}

func (a *app) breakBlock() {
	hit, ok := a.world.Raycast(a.body.Position, a.camera.front, a.cfg.Camera.Reach)
	if !ok {
		return
	}
	if _, removed := a.world.RemoveBlock(hit.X, hit.Y, hit.Z); removed {
		slog.Info("block removed", "x", hit.X, "y", hit.Y, "z", hit.Z, "normal", hit.Normal)
	}
}

// movement reads held keys every frame for fast responses.
func (a *app) movement(deltaTime float32) {
	speed := a.cfg.Camera.MoveSpeed

	var direction mgl32.Vec3
	if a.window.GetKey(glfw.KeyW) == glfw.Press {
		direction = direction.Add(a.camera.orientation)
	}
	if a.window.GetKey(glfw.KeyS) == glfw.Press {
		direction = direction.Sub(a.camera.orientation)
	}
	if a.window.GetKey(glfw.KeyA) == glfw.Press {
		direction = direction.Sub(a.camera.right)
	}
	if a.window.GetKey(glfw.KeyD) == glfw.Press {
		direction = direction.Add(a.camera.right)
	}
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}

	if a.flying {
		if a.window.GetKey(glfw.KeyE) == glfw.Press {
			direction = direction.Add(worldUp)
		}
		if a.window.GetKey(glfw.KeyQ) == glfw.Press {
			direction = direction.Sub(worldUp)
		}
	} else if a.window.GetKey(glfw.KeySpace) == glfw.Press {
		a.body.Jump(physics.DefaultJumpKick)
	}

	a.body.Velocity = a.body.Velocity.Add(direction.Mul(speed * deltaTime))
}
