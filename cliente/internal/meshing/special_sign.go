package meshing

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/util"
)

// renderSign cobre placas de chão e de parede. A de chão tem mastro e usa
// a property rotation; a de parede só tem a tábua, encostada pela facing.
// A tábua é mais larga que o bloco (24 de largura), de propósito.
func renderSign(ctx *RenderContext) {
	name := ctx.State.BaseName()
	mats, sprites := ResolveSpecialTextures(name, ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	if strings.Contains(name, "_wall_") {
		transform := ctx.blockTransform(ctx.facingYaw())
		board := BoxModel(BoxOptions{
			From: [3]float32{-4, 4, 14}, Size: [3]float32{24, 12, 2},
			TexOffset: [2]float32{0, 0}, Shade: true,
		})
		ctx.emit(board, mats[0], sprites, transform)
		return
	}

	transform := ctx.blockTransform(ctx.rotationYaw())

	post := BoxModel(BoxOptions{
		From: [3]float32{7, 0, 7}, Size: [3]float32{2, 9, 2},
		TexOffset: [2]float32{0, 14}, Shade: true,
	})
	board := BoxModel(BoxOptions{
		From: [3]float32{-4, 9, 7}, Size: [3]float32{24, 12, 2},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	ctx.emit(post, mats[0], sprites, transform)
	ctx.emit(board, mats[0], sprites, transform)
}

// Correntes das placas penduradas: quads planos (frente/trás apenas).
var chainFaces = []util.Direction{util.DirNorth, util.DirSouth}

// renderHangingSign cobre placas penduradas de teto e de parede. No teto,
// attached=true junta as correntes num V central; attached=false pendura
// duas correntes verticais. Na parede há sempre a barra de madeira no
// topo e as duas correntes verticais.
func renderHangingSign(ctx *RenderContext) {
	name := ctx.State.BaseName()
	mats, sprites := ResolveSpecialTextures(name, ctx.Materials, ctx.Models, assets.PassCutout)
	if len(mats) == 0 {
		return
	}

	isWall := strings.Contains(name, "_wall_")
	var transform rl.Matrix
	if isWall {
		transform = ctx.blockTransform(ctx.facingYaw())
	} else {
		transform = ctx.blockTransform(ctx.rotationYaw())
	}

	board := BoxModel(BoxOptions{
		From: [3]float32{1, 0, 7}, Size: [3]float32{14, 10, 2},
		TexOffset: [2]float32{0, 12}, Shade: true,
	})
	ctx.emit(board, mats[0], sprites, transform)

	straightChain := func(cx float32) {
		chain := BoxModel(BoxOptions{
			From: [3]float32{cx - 1.5, 10, 8}, Size: [3]float32{3, 6, 0},
			TexOffset: [2]float32{0, 6}, Shade: false,
			VisibleFaces: chainFaces,
		})
		ctx.emit(chain, mats[0], sprites, transform)
	}

	if isWall {
		bar := BoxModel(BoxOptions{
			From: [3]float32{0, 14, 6}, Size: [3]float32{16, 2, 4},
			TexOffset: [2]float32{0, 28}, Shade: true,
		})
		ctx.emit(bar, mats[0], sprites, transform)
		straightChain(3)
		straightChain(13)
		return
	}

	if ctx.State.BoolProperty("attached") {
		// Correntes em V: dois quads inclinados ±45°, presos no centro
		// do teto do bloco.
		for _, side := range []float32{-1, 1} {
			chain := BoxModel(BoxOptions{
				From: [3]float32{-1.5, -6, 0}, Size: [3]float32{3, 6, 0},
				TexOffset: [2]float32{0, 6}, Shade: false,
				VisibleFaces: chainFaces,
			})
			m := compose(
				rl.MatrixRotateZ(deg2rad(45*side)),
				rl.MatrixTranslate(8, 16, 8),
				transform,
			)
			ctx.emit(chain, mats[0], sprites, m)
		}
		return
	}

	straightChain(3)
	straightChain(13)
}
