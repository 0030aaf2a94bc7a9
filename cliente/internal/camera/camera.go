package camera

import (
	"math"

	"VoxelMesh/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController é uma câmera orbital em torno de um ponto da cena.
// Movimento suave: o estado atual é interpolado até o estado alvo.
type CameraController struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado Alvo
	TargetLookAt mgl32.Vec3
	TargetZoom   float32
	Yaw          float32 // Rotação horizontal (radianos)
	Pitch        float32 // Elevação (radianos, negativo olha para baixo)

	// Estado Atual (interpolado)
	CurrentLookAt mgl32.Vec3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera.
func New() *CameraController {
	c := &CameraController{
		MinZoom:      4.0,
		MaxZoom:      400.0,
		MoveSpeed:    30.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    8.0,
		SmoothFactor: 0.15,

		TargetZoom: 48.0,
		Yaw:        mgl32.DegToRad(45),
		Pitch:      mgl32.DegToRad(-35),
	}
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.apply()
	return c
}

// Frame enquadra a caixa [min, max] imediatamente (sem suavização).
func (c *CameraController) Frame(min, max mgl32.Vec3) {
	center := min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() * 0.5

	c.TargetLookAt = center
	c.CurrentLookAt = center
	c.TargetZoom = util.Clamp(radius*2.2, c.MinZoom, c.MaxZoom)
	c.CurrentZoom = c.TargetZoom
	c.apply()
}

// Update interpola o estado atual até o alvo. Deve ser chamado a cada frame.
func (c *CameraController) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	c.CurrentLookAt = c.CurrentLookAt.Add(c.TargetLookAt.Sub(c.CurrentLookAt).Mul(factor))
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.apply()
}

// Offset retorna o vetor do ponto observado até a câmera.
func (c *CameraController) Offset(dist float32) mgl32.Vec3 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	sinP := float32(math.Sin(float64(c.Pitch)))
	cosY := float32(math.Cos(float64(c.Yaw)))
	sinY := float32(math.Sin(float64(c.Yaw)))

	return mgl32.Vec3{
		dist * cosP * sinY,
		dist * -sinP, // Y é UP no Raylib; pitch negativo coloca a câmera acima do alvo
		dist * cosP * cosY,
	}
}

func (c *CameraController) apply() {
	pos := c.CurrentLookAt.Add(c.Offset(c.CurrentZoom))
	c.RLCamera.Position = toRL(pos)
	c.RLCamera.Target = toRL(c.CurrentLookAt)
}

// HandleInput processa entrada do usuário. Retorna true se houve movimento.
func (c *CameraController) HandleInput(dt float32) bool {
	moved := false

	// Zoom com Scroll
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		moved = true
		c.TargetZoom = util.Clamp(c.TargetZoom-wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
	}

	// Rotação com botão esquerdo (Orbit)
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.Yaw -= delta.X * c.RotateSpeed * 0.005
		c.Pitch -= delta.Y * c.RotateSpeed * 0.005
		c.Pitch = util.Clamp(c.Pitch, mgl32.DegToRad(-89), mgl32.DegToRad(-5))
	}

	// Movimento WASD no plano XZ, relativo à direção da câmera
	forward := c.Offset(1).Mul(-1)
	forward[1] = 0
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

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
		// Quanto mais longe, mais rápido
		speed := c.MoveSpeed * (c.CurrentZoom / 48.0) * dt
		c.TargetLookAt = c.TargetLookAt.Add(move.Normalize().Mul(speed))
		moved = true
	}

	return moved
}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
