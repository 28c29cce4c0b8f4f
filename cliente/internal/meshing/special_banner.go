package meshing

import (
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/blockdata"
)

// BannerSway calcula o ângulo de balanço do pano de um banner. O vento é
// um pseudo-tempo determinístico derivado da posição do bloco, cíclico a
// cada 100 unidades de tempo; o ângulo resultante fica contido em
// π·[-0.0225, -0.0025].
func BannerSway(x, y, z int32, time float64) float64 {
	wind := math.Mod(float64(x*7+y*9+z*13)+time, 100)
	if wind < 0 {
		wind += 100
	}
	wind /= 100
	return math.Pi * (-0.0125 + 0.01*math.Cos(2*math.Pi*wind))
}

// renderBanner cobre banners de chão e de parede. Banners de chão leem a
// property inteira rotation (0-15) e ganham mastro; os de parede são
// orientados pelo facing e deslocados contra a parede. Barra horizontal e
// pano existem nos dois casos; a cor do pano vem da tabela de tinturas
// pelo prefixo do nome do bloco.
func renderBanner(ctx *RenderContext) {
	name := ctx.State.BaseName()
	isWall := strings.HasSuffix(name, "_wall_banner")

	mats, sprites := ResolveSpecialTextures(name, ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	var transform rl.Matrix
	if isWall {
		// Contra a parede, com a barra na altura do topo do bloco.
		local := rl.MatrixTranslate(0, -14, -7)
		transform = compose(local, ctx.blockTransform(ctx.facingYaw()))
	} else {
		transform = ctx.blockTransform(ctx.rotationYaw())

		pole := BoxModel(BoxOptions{
			From: [3]float32{7, 0, 7}, Size: [3]float32{2, 28, 2},
			TexOffset: [2]float32{44, 0}, Shade: true,
		})
		ctx.emit(pole, mats[0], sprites, transform)
	}

	bar := BoxModel(BoxOptions{
		From: [3]float32{0, 28, 7}, Size: [3]float32{16, 2, 2},
		TexOffset: [2]float32{0, 42}, Shade: true,
	})
	ctx.emit(bar, mats[0], sprites, transform)

	tint, _ := blockdata.DyeColorFromBlockName(name)
	sway := float32(BannerSway(ctx.X, ctx.Y, ctx.Z, ctx.Time))

	// O pano é construído com a borda superior na origem para que a
	// rotação de balanço (eixo X) gire em torno do ponto de fixação.
	flag := BoxModel(BoxOptions{
		From: [3]float32{0, -26, -0.5}, Size: [3]float32{16, 26, 1},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	flagM := compose(
		rl.MatrixRotateX(sway),
		rl.MatrixTranslate(0, 28, 8.5),
		transform,
	)
	ctx.emitTinted(flag, mats[0], sprites, flagM, tint)
}
