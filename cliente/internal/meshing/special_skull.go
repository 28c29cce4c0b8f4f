package meshing

import (
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
)

// renderSkull cobre crânios e cabeças, de chão e de parede. Cabeças de
// parede usam facing e são empurradas contra a parede; as de chão usam a
// property rotation (0-15). Dragão e piglin têm geometria própria com
// articulações (mandíbula e orelhas); o resto é um cubo 8×8×8.
func renderSkull(ctx *RenderContext) {
	name := ctx.State.BaseName()

	// Cabeça de player tem pixels semitransparentes na segunda camada;
	// as demais são cutout puro.
	pass := assets.PassCutout
	if strings.HasPrefix(name, "player") {
		pass = assets.PassTranslucent
	}

	mats, sprites := ResolveSpecialTextures(name, ctx.Materials, ctx.Models, pass)
	if len(mats) == 0 {
		return
	}

	var transform rl.Matrix
	if strings.Contains(name, "_wall_") {
		transform = compose(
			rl.MatrixTranslate(0, 4, -4),
			ctx.blockTransform(ctx.facingYaw()),
		)
	} else {
		transform = ctx.blockTransform(ctx.rotationYaw())
	}

	switch {
	case strings.Contains(name, "dragon"):
		renderDragonHead(ctx, mats[0], sprites, transform)
	case strings.Contains(name, "piglin"):
		renderPiglinHead(ctx, mats[0], sprites, transform)
	default:
		head := BoxModel(BoxOptions{
			From: [3]float32{4, 0, 4}, Size: [3]float32{8, 8, 8},
			TexOffset: [2]float32{0, 0}, Shade: true,
		})
		ctx.emit(head, mats[0], sprites, transform)
	}
}

// renderDragonHead monta crânio, focinho e mandíbula. A mandíbula gira em
// torno da dobradiça na parte de trás do focinho; quando o bloco está
// powered ela oscila com o tempo.
func renderDragonHead(ctx *RenderContext, mat assets.Material, sprites [][6]float32, transform rl.Matrix) {
	skull := BoxModel(BoxOptions{
		From: [3]float32{2, 0, 2}, Size: [3]float32{12, 12, 12},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	snout := BoxModel(BoxOptions{
		From: [3]float32{4, 4, -4}, Size: [3]float32{8, 5, 6},
		TexOffset: [2]float32{48, 0}, Shade: true,
	})
	ctx.emit(skull, mat, sprites, transform)
	ctx.emit(snout, mat, sprites, transform)

	var jawAngle float32
	if ctx.State.BoolProperty("powered") {
		jawAngle = float32(0.2 * (math.Sin(ctx.Time*0.1) + 1) / 2)
	}

	// Mandíbula construída com a dobradiça na origem.
	jaw := BoxModel(BoxOptions{
		From: [3]float32{-4, -2, -6}, Size: [3]float32{8, 2, 6},
		TexOffset: [2]float32{48, 11}, Shade: true,
	})
	jawM := compose(
		rl.MatrixRotateX(jawAngle),
		rl.MatrixTranslate(8, 4, 2),
		transform,
	)
	ctx.emit(jaw, mat, sprites, jawM)
}

// renderPiglinHead monta cabeça, focinho e as duas orelhas abanadas para
// fora em torno dos pontos de fixação laterais.
func renderPiglinHead(ctx *RenderContext, mat assets.Material, sprites [][6]float32, transform rl.Matrix) {
	head := BoxModel(BoxOptions{
		From: [3]float32{3, 0, 4}, Size: [3]float32{10, 8, 8},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	snout := BoxModel(BoxOptions{
		From: [3]float32{6, 0, 3}, Size: [3]float32{4, 4, 1},
		TexOffset: [2]float32{31, 1}, Shade: true,
	})
	ctx.emit(head, mat, sprites, transform)
	ctx.emit(snout, mat, sprites, transform)

	// Orelhas: construídas com a junta na origem, giradas ±30° no eixo Z.
	for i, side := range []float32{-1, 1} {
		ear := BoxModel(BoxOptions{
			From: [3]float32{0, -5, -2}, Size: [3]float32{1, 5, 4},
			TexOffset: [2]float32{51 + 8*float32(i), 6}, Shade: true,
		})
		if side > 0 {
			ear = BoxModel(BoxOptions{
				From: [3]float32{-1, -5, -2}, Size: [3]float32{1, 5, 4},
				TexOffset: [2]float32{51 + 8*float32(i), 6}, Shade: true,
			})
		}
		jointX := float32(8 + 5*side)
		earM := compose(
			rl.MatrixRotateZ(deg2rad(30 * side)),
			rl.MatrixTranslate(jointX, 7, 8),
			transform,
		)
		ctx.emit(ear, mat, sprites, earM)
	}
}
