package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/shared/util"
)

// updateInput processa atalhos de teclado e a seleção de blocos.
func (a *App) updateInput() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.ShowDebugInfo = !a.ShowDebugInfo
		a.Config.ShowDebugInfo = a.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowGrid = !a.ShowGrid
		a.Config.ShowGrid = a.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.SelectedCoord = nil
	}

	if a.State == StateViewing && rl.IsMouseButtonPressed(rl.MouseRightButton) {
		a.pickBlock()
	}
}

// pickBlock faz um raymarch a partir do mouse e seleciona o primeiro bloco
// não-vazio atingido.
func (a *App) pickBlock() {
	if a.structure == nil {
		return
	}

	ray := rl.GetMouseRay(rl.GetMousePosition(), a.Cam.RLCamera)

	const step = float32(0.05)
	const maxDist = float32(300.0)

	for dist := float32(0); dist < maxDist; dist += step {
		px := ray.Position.X + ray.Direction.X*dist
		py := ray.Position.Y + ray.Direction.Y*dist
		pz := ray.Position.Z + ray.Direction.Z*dist

		bx := int32(px / util.GameScale)
		by := int32(py / util.GameScale)
		bz := int32(pz / util.GameScale)
		if px < 0 || py < 0 || pz < 0 {
			continue
		}
		if !a.structure.InBounds(bx, by, bz) {
			continue
		}
		if a.structure.At(bx, by, bz) != nil {
			coord := util.NewBlockCoord(bx, by, bz)
			a.SelectedCoord = &coord
			return
		}
	}

	a.SelectedCoord = nil
}
