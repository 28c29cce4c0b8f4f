package meshing

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/util"
)

// Índices dos slots de textura de baús no special_blocks.json:
// 0 = single, 1 = metade esquerda, 2 = metade direita.
const (
	chestSlotSingle = 0
	chestSlotLeft   = 1
	chestSlotRight  = 2
)

// renderChest cobre chest, trapped_chest e ender_chest.
// Três cuboides por variante: corpo, tampa e fecho.
func renderChest(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	chestType := ctx.State.Property("type")
	if chestType == "" {
		chestType = "single"
	}

	slot := chestSlotSingle
	var body, lid, lock BoxOptions
	switch chestType {
	case "single":
		body = BoxOptions{From: [3]float32{1, 0, 1}, Size: [3]float32{14, 10, 14}, TexOffset: [2]float32{0, 19}, Shade: true}
		lid = BoxOptions{From: [3]float32{1, 9, 1}, Size: [3]float32{14, 5, 14}, TexOffset: [2]float32{0, 0}, Shade: true}
		lock = BoxOptions{From: [3]float32{7, 8, 15}, Size: [3]float32{2, 4, 1}, TexOffset: [2]float32{0, 0}, Shade: true}
	case "left":
		if len(sprites) > chestSlotLeft {
			slot = chestSlotLeft
		}
		body = BoxOptions{From: [3]float32{1, 0, 1}, Size: [3]float32{15, 10, 14}, TexOffset: [2]float32{0, 19}, Shade: true}
		lid = BoxOptions{From: [3]float32{1, 9, 1}, Size: [3]float32{15, 5, 14}, TexOffset: [2]float32{0, 0}, Shade: true}
		lock = BoxOptions{From: [3]float32{15, 8, 15}, Size: [3]float32{1, 4, 1}, TexOffset: [2]float32{0, 0}, Shade: true}
	case "right":
		if len(sprites) > chestSlotRight {
			slot = chestSlotRight
		}
		body = BoxOptions{From: [3]float32{0, 0, 1}, Size: [3]float32{15, 10, 14}, TexOffset: [2]float32{0, 19}, Shade: true}
		lid = BoxOptions{From: [3]float32{0, 9, 1}, Size: [3]float32{15, 5, 14}, TexOffset: [2]float32{0, 0}, Shade: true}
		lock = BoxOptions{From: [3]float32{0, 8, 15}, Size: [3]float32{1, 4, 1}, TexOffset: [2]float32{0, 0}, Shade: true}
	default:
		log.Printf("[Special] AVISO: type de baú desconhecido %q em %s, bloco ignorado",
			chestType, util.NewBlockCoord(ctx.X, ctx.Y, ctx.Z))
		return
	}

	transform := ctx.blockTransform(ctx.facingYaw())
	for _, opts := range []BoxOptions{body, lid, lock} {
		opts.TextureSlot = slot
		ctx.emit(BoxModel(opts), mats[slot], sprites, transform)
	}
}

// shulkerOrientations mapeia facing → rotação + deslocamento da caixa.
// As 6 direções são válidas ("up" incluso); a caixa gira em torno do
// centro do bloco (8,8,8).
var shulkerOrientations = map[string]util.Rotation{
	"up":    {X: 0, Y: 0},
	"down":  {X: 180, Y: 0},
	"north": {X: 90, Y: 180},
	"south": {X: 90, Y: 0},
	"west":  {X: 90, Y: 270},
	"east":  {X: 90, Y: 90},
}

// renderShulkerBox emite tampa e base orientadas pela property facing.
func renderShulkerBox(ctx *RenderContext) {
	mats, sprites := ResolveSpecialTextures(ctx.State.BaseName(), ctx.Materials, ctx.Models, assets.PassSolid)
	if len(mats) == 0 {
		return
	}

	facing := ctx.State.Property("facing")
	if facing == "" {
		facing = "up"
	}
	rot, ok := shulkerOrientations[facing]
	if !ok {
		log.Printf("[Special] AVISO: facing de shulker desconhecido %q em %s, bloco ignorado",
			facing, util.NewBlockCoord(ctx.X, ctx.Y, ctx.Z))
		return
	}

	orient := compose(
		rl.MatrixTranslate(-8, -8, -8),
		rl.MatrixRotateX(deg2rad(rot.X)),
		rl.MatrixRotateY(deg2rad(rot.Y)),
		rl.MatrixTranslate(8, 8, 8),
	)
	transform := compose(orient, ctx.blockTransform(0))

	lid := BoxModel(BoxOptions{
		From: [3]float32{0, 4, 0}, Size: [3]float32{16, 12, 16},
		TexOffset: [2]float32{0, 0}, Shade: true,
	})
	base := BoxModel(BoxOptions{
		From: [3]float32{0, 0, 0}, Size: [3]float32{16, 8, 16},
		TexOffset: [2]float32{0, 28}, Shade: true,
	})

	ctx.emit(lid, mats[0], sprites, transform)
	ctx.emit(base, mats[0], sprites, transform)
}
