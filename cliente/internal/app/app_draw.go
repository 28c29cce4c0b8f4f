package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza um frame completo.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(25, 28, 35, 255))

	if a.State == StateViewing {
		rl.BeginMode3D(a.Cam.RLCamera)

		if a.ShowGrid {
			rl.DrawGrid(64, 1.0)
		}
		a.scene.Draw()
		if a.SelectedCoord != nil {
			a.scene.DrawSelection(*a.SelectedCoord)
		}

		rl.EndMode3D()
		a.drawHUD()
	} else {
		a.drawLoadingScreen()
	}

	rl.EndDrawing()
}

// drawLoadingScreen desenha a tela de espera antes da primeira estrutura.
func (a *App) drawLoadingScreen() {
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()

	title := "BlockVision"
	titleSize := int32(40)
	titleW := rl.MeasureText(title, titleSize)
	rl.DrawText(title, int32(w)/2-titleW/2, int32(h)/2-60, titleSize, rl.RayWhite)

	msg := a.StatusMessage
	msgW := rl.MeasureText(msg, 20)
	rl.DrawText(msg, int32(w)/2-msgW/2, int32(h)/2, 20, rl.Gray)

	// Pontinhos animados para mostrar que não travou.
	dots := (a.frameCount / 30) % 4
	anim := ""
	for i := 0; i < dots; i++ {
		anim += "."
	}
	rl.DrawText(anim, int32(w)/2+msgW/2+4, int32(h)/2, 20, rl.Gray)
}

// drawHUD desenha as informações sobrepostas à cena.
func (a *App) drawHUD() {
	rl.DrawFPS(10, 10)

	if a.structure != nil {
		info := fmt.Sprintf("Estrutura: %dx%dx%d (%d blocos)",
			a.structure.Size.X, a.structure.Size.Y, a.structure.Size.Z,
			a.structure.Count())
		rl.DrawText(info, 10, 34, 18, rl.RayWhite)
	}

	if a.SelectedCoord != nil {
		c := *a.SelectedCoord
		if b := a.structure.At(c.X, c.Y, c.Z); b != nil {
			label := fmt.Sprintf("[%d, %d, %d] %s", c.X, c.Y, c.Z, b.Name)
			rl.DrawText(label, 10, 56, 18, rl.Yellow)
		}
	}

	if a.ShowDebugInfo {
		a.drawDebugInfo()
	}

	hint := "Botão esq: orbitar | Scroll: zoom | WASD/EQ: mover | Dir: selecionar | G: grade | F3: debug"
	rl.DrawText(hint, 10, int32(rl.GetScreenHeight())-24, 14, rl.Gray)
}

// drawDebugInfo desenha as métricas internas (toggle F3).
func (a *App) drawDebugInfo() {
	y := int32(82)
	line := func(s string) {
		rl.DrawText(s, 10, y, 16, rl.Green)
		y += 20
	}

	line(fmt.Sprintf("Zoom: %.1f", a.Cam.CurrentZoom))
	line(fmt.Sprintf("Alvo: %.1f %.1f %.1f",
		a.Cam.CurrentLookAt.X, a.Cam.CurrentLookAt.Y, a.Cam.CurrentLookAt.Z))
	line(fmt.Sprintf("Seções animadas: %d", len(a.animatedOrigins)))
	if a.netClient != nil {
		line(fmt.Sprintf("Conectado: %v", a.netClient.IsConnected()))
	}
}
