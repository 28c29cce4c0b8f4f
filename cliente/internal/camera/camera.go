package camera

import (
	"math"

	"BlockVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a câmera orbital em torno da estrutura.
// Movimento suave: os alvos são interpolados a cada frame.
type Controller struct {
	RLCamera rl.Camera3D

	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32

	TargetLookAt rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // azimute (radianos)
	TargetAngleX float32 // elevação (radianos, negativa = olhando de cima)

	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria o controlador com o enquadramento isométrico padrão.
func New() *Controller {
	c := &Controller{
		MinZoom:      2.0,
		MaxZoom:      200.0,
		MoveSpeed:    20.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    4.0,
		SmoothFactor: 0.1,

		TargetZoom:   30.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -30.0 * rl.Deg2rad,
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.recalc()
	return c
}

// FitStructure centraliza a câmera na estrutura e ajusta o zoom para que
// ela caiba inteira no enquadramento.
func (c *Controller) FitStructure(size util.BlockCoord) {
	center := rl.Vector3{
		X: float32(size.X) * util.GameScale / 2,
		Y: float32(size.Y) * util.GameScale / 2,
		Z: float32(size.Z) * util.GameScale / 2,
	}
	c.TargetLookAt = center
	c.CurrentLookAt = center

	diag := math.Sqrt(float64(size.X*size.X + size.Y*size.Y + size.Z*size.Z))
	zoom := float32(diag) * util.GameScale * 1.2
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	}
	if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	c.TargetZoom = zoom
	c.CurrentZoom = zoom

	c.recalc()
}

// Update interpola os valores atuais rumo aos alvos e recalcula a posição.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recalc()
}

// recalc converte ângulos esféricos + zoom em posição cartesiana.
func (c *Controller) recalc() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX,
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa zoom (scroll), órbita (botão esquerdo) e pan (WASD).
// Retorna true se houve interação.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom -= wheel * c.ZoomSpeed
		if c.TargetZoom < c.MinZoom {
			c.TargetZoom = c.MinZoom
		}
		if c.TargetZoom > c.MaxZoom {
			c.TargetZoom = c.MaxZoom
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp de elevação: nem de ponta cabeça, nem rasante.
		maxElev := float32(-5.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		if c.TargetAngleX > maxElev {
			c.TargetAngleX = maxElev
		}
		if c.TargetAngleX < minElev {
			c.TargetAngleX = minElev
		}
	}

	// Pan WASD relativo à câmera, projetado no plano do chão.
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	target := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := target.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Velocidade proporcional ao zoom: quanto mais longe, mais rápido.
	speed := c.MoveSpeed * (c.CurrentZoom / 30.0) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}
	if rl.IsKeyDown(rl.KeyE) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if rl.IsKeyDown(rl.KeyQ) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(speed)
		target = target.Add(move)
		c.TargetLookAt = rl.Vector3{X: target.X(), Y: target.Y(), Z: target.Z()}
		moved = true
	}

	return moved
}
