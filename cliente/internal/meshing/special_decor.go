package meshing

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/util"
)

// renderBell emite corpo e aba do sino orientados pela property facing;
// o suporte é o modelo genérico (NeedRenderModel).
func renderBell(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	transform := ctx.blockTransform(ctx.facingYaw())

	body := BoxModel(BoxOptions{
		From: [3]float32{5, 6, 5}, Size: [3]float32{6, 7, 6},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	base := BoxModel(BoxOptions{
		From: [3]float32{4, 4, 4}, Size: [3]float32{8, 2, 8},
		TexOffset: [2]float32{0, 13}, Shade: true,
	})

	ctx.emit(body, mats[0], sprites, transform)
	ctx.emit(base, mats[0], sprites, transform)
}

// renderDecoratedPot monta o pote em quatro partes visuais: dois anéis de
// gargalo escalados de forma não uniforme, tampas de cima/baixo e quatro
// painéis laterais, todos pendurados numa rotação raiz derivada do facing:
// (1 - rotação/180)·π.
func renderDecoratedPot(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	rootRot := float32((1 - float64(ctx.facingYaw())/180) * math.Pi)
	root := compose(
		rl.MatrixTranslate(-8, 0, -8),
		rl.MatrixRotateY(rootRot),
		rl.MatrixTranslate(8, 0, 8),
		ctx.blockTransform(0),
	)

	// Anéis do gargalo, escalados em torno do próprio centro.
	neckScale := func(from, size [3]float32, sx, sy, sz float32, tex [2]float32) (BakedModel, rl.Matrix) {
		cx := from[0] + size[0]/2
		cy := from[1] + size[1]/2
		cz := from[2] + size[2]/2
		m := compose(
			rl.MatrixTranslate(-cx, -cy, -cz),
			rl.MatrixScale(sx, sy, sz),
			rl.MatrixTranslate(cx, cy, cz),
			root,
		)
		return BoxModel(BoxOptions{From: from, Size: size, TexOffset: tex, Shade: true}), m
	}

	neck1, m1 := neckScale([3]float32{4, 16, 4}, [3]float32{8, 3, 8}, 1.05, 1, 1.05, [2]float32{0, 0})
	neck2, m2 := neckScale([3]float32{5, 19, 5}, [3]float32{6, 1, 6}, 0.9, 1.2, 0.9, [2]float32{24, 0})
	ctx.emit(neck1, mats[0], sprites, m1)
	ctx.emit(neck2, mats[0], sprites, m2)

	top := BoxModel(BoxOptions{
		From: [3]float32{1, 15, 1}, Size: [3]float32{14, 1, 14},
		TexOffset: [2]float32{0, 11}, Shade: true,
	})
	bottom := BoxModel(BoxOptions{
		From: [3]float32{1, 0, 1}, Size: [3]float32{14, 1, 14},
		TexOffset: [2]float32{0, 26}, Shade: true,
	})
	ctx.emit(top, mats[0], sprites, root)
	ctx.emit(bottom, mats[0], sprites, root)

	// Quatro painéis laterais, um por quadrante de rotação.
	panelSlot := 0
	if len(sprites) > 1 {
		panelSlot = 1 // sherd/painel decorado quando o bloco tem slot próprio
	}
	for i := 0; i < 4; i++ {
		side := compose(
			rl.MatrixTranslate(-8, 0, -8),
			rl.MatrixRotateY(deg2rad(float32(i)*90)),
			rl.MatrixTranslate(8, 0, 8),
			root,
		)
		panel := BoxModel(BoxOptions{
			TextureSlot: panelSlot,
			From:        [3]float32{1, 1, 0.5}, Size: [3]float32{14, 14, 1},
			TexOffset: [2]float32{0, 0}, Shade: true,
			VisibleFaces: []util.Direction{util.DirNorth},
		})
		ctx.emit(panel, mats[panelSlot], sprites, side)
	}
}

// bedPartGeometry descreve a laje e o par de postes de canto de cada parte.
type bedPartGeometry struct {
	slabTex [2]float32
	posts   [2][3]float32 // cantos dos dois postes
	postTex [2]float32
	postRot [2]float32 // yaw próprio de cada poste (par de matrizes por parte)
}

var bedParts = map[string]bedPartGeometry{
	"head": {
		slabTex: [2]float32{0, 0},
		posts:   [2][3]float32{{0, 0, 13}, {13, 0, 13}},
		postTex: [2]float32{50, 0},
		postRot: [2]float32{270, 180},
	},
	"foot": {
		slabTex: [2]float32{0, 22},
		posts:   [2][3]float32{{0, 0, 0}, {13, 0, 0}},
		postTex: [2]float32{50, 6},
		postRot: [2]float32{0, 90},
	},
}

// renderBed emite a laje 16×16×6 e os dois postes da parte (head/foot).
func renderBed(ctx *RenderContext) {
	part := ctx.State.Property("part")
	geom, ok := bedParts[part]
	if !ok {
		log.Printf("[Special] AVISO: part de cama desconhecida %q em %s, bloco ignorado",
			part, util.NewBlockCoord(ctx.X, ctx.Y, ctx.Z))
		return
	}

	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	transform := ctx.blockTransform(ctx.facingYaw())

	slab := BoxModel(BoxOptions{
		From: [3]float32{0, 3, 0}, Size: [3]float32{16, 6, 16},
		TexOffset: geom.slabTex, Shade: true,
	})
	ctx.emit(slab, mats[0], sprites, transform)

	for i, corner := range geom.posts {
		post := BoxModel(BoxOptions{
			From: corner, Size: [3]float32{3, 3, 3},
			TexOffset: geom.postTex, Shade: true,
		})
		cx := corner[0] + 1.5
		cz := corner[2] + 1.5
		m := compose(
			rl.MatrixTranslate(-cx, 0, -cz),
			rl.MatrixRotateY(deg2rad(geom.postRot[i])),
			rl.MatrixTranslate(cx, 0, cz),
			transform,
		)
		ctx.emit(post, mats[0], sprites, m)
	}
}
