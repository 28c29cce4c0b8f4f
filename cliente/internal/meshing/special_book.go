package meshing

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
)

// bookOpenAngle calcula o ângulo de abertura do livro a partir da base de
// ângulo (tempo) e da escala de abertura.
func bookOpenAngle(angleBasis float64, openScale float32) float32 {
	return float32(math.Sin(angleBasis*0.02)*0.1+1.25) * openScale
}

// renderBook monta o livro compartilhado por lectern e enchanting table:
// duas capas e dois blocos de páginas girados em sentidos opostos pelo
// ângulo de abertura, duas páginas soltas controladas pelos percentuais de
// virada (0-1) e um cuboide de lombada. local posiciona o livro dentro do
// bloco (unidades de modelo); world é a matriz bloco→mundo.
func renderBook(ctx *RenderContext, mats []assets.Material, sprites [][6]float32, local, world rl.Matrix, angleBasis float64, openScale, flipA, flipB float32) {
	rot := bookOpenAngle(angleBasis, openScale)

	leftSide := compose(rl.MatrixRotateY(rot), local, world)
	rightSide := compose(rl.MatrixRotateY(-rot), local, world)

	coverL := BoxModel(BoxOptions{
		From: [3]float32{-6, -5, -0.5}, Size: [3]float32{6, 10, 1},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	coverR := BoxModel(BoxOptions{
		From: [3]float32{0, -5, -0.5}, Size: [3]float32{6, 10, 1},
		TexOffset: [2]float32{14, 0}, Mirror: true, Shade: true,
	})
	pagesL := BoxModel(BoxOptions{
		From: [3]float32{-5, -4, 0.5}, Size: [3]float32{5, 8, 1},
		TexOffset: [2]float32{0, 12}, Shade: true,
	})
	pagesR := BoxModel(BoxOptions{
		From: [3]float32{0, -4, 0.5}, Size: [3]float32{5, 8, 1},
		TexOffset: [2]float32{12, 12}, Mirror: true, Shade: true,
	})

	ctx.emit(coverL, mats[0], sprites, leftSide)
	ctx.emit(pagesL, mats[0], sprites, leftSide)
	ctx.emit(coverR, mats[0], sprites, rightSide)
	ctx.emit(pagesR, mats[0], sprites, rightSide)

	// Páginas soltas: interpolam do lado esquerdo (+rot) ao direito (-rot)
	// conforme o percentual de virada.
	for _, flip := range []float32{flipA, flipB} {
		page := BoxModel(BoxOptions{
			From: [3]float32{0, -4, 0.75}, Size: [3]float32{5, 8, 0},
			TexOffset: [2]float32{24, 12}, Shade: false,
		})
		pageRot := rot * (1 - 2*flip)
		ctx.emit(page, mats[0], sprites, compose(rl.MatrixRotateY(pageRot), local, world))
	}

	seam := BoxModel(BoxOptions{
		From: [3]float32{-1, -5, -0.75}, Size: [3]float32{2, 10, 1},
		TexOffset: [2]float32{28, 0}, Shade: true,
	})
	ctx.emit(seam, mats[0], sprites, compose(local, world))
}

// bookFlips deriva os dois percentuais de virada de página do tempo.
func bookFlips(time float64) (float32, float32) {
	frac := func(v float64) float32 { return float32(v - math.Floor(v)) }
	return frac(time * 0.01), frac(time*0.01 + 0.25)
}

// renderLectern desenha o livro inclinado sobre o púlpito; o púlpito em si
// é o modelo genérico (NeedRenderModel).
func renderLectern(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	flipA, flipB := bookFlips(ctx.Time)
	local := compose(
		rl.MatrixRotateZ(deg2rad(90)), // lombada deitada, capas para cima
		rl.MatrixRotateX(deg2rad(-22.5)),
		rl.MatrixTranslate(8, 17, 10),
	)
	renderBook(ctx, mats, sprites, local, ctx.blockTransform(ctx.facingYaw()), ctx.Time, 1.2, flipA, flipB)
}

// renderEnchantingTable desenha o livro flutuando deitado sobre a mesa com
// uma pequena oscilação vertical; a mesa em si é o modelo genérico.
func renderEnchantingTable(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	bob := 0.1 + math.Sin(ctx.Time*0.1)*0.01 // em blocos
	flipA, flipB := bookFlips(ctx.Time)
	local := compose(
		rl.MatrixRotateZ(deg2rad(90)),
		rl.MatrixRotateX(deg2rad(-80)),
		rl.MatrixTranslate(8, 12+float32(bob)*16, 8),
	)
	renderBook(ctx, mats, sprites, local, ctx.blockTransform(0), ctx.Time, 1.0, flipA, flipB)
}
