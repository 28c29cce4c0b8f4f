package meshing

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/blockdata"
	"BlockVision/shared/util"
)

// RenderContext carrega tudo que um renderer especial precisa para emitir
// geometria de um bloco. Time é o tempo de animação fornecido pelo host a
// cada rebuild (os renderers nunca consultam o relógio por conta própria).
type RenderContext struct {
	Scene     SceneSink
	X, Y, Z   int32
	State     *blockdata.BlockState
	Models    *assets.Manager
	Materials *assets.MaterialPicker
	Structure *blockdata.Structure
	Time      float64
}

// SpecialEntry associa um matcher de nome a um renderer procedural.
// NeedRenderModel indica que o modelo genérico também deve ser desenhado
// (bloco cuja entidade especial fica sobre uma forma normal). Animated
// marca renderers que leem o tempo: seções com eles não entram no cache
// e são re-meshadas pelo host.
type SpecialEntry struct {
	matcher         nameMatcher
	Render          func(ctx *RenderContext)
	NeedRenderModel bool
	Animated        bool
}

// specialRegistry é a lista ordenada de renderers especiais. A ordem
// importa: primeiro match vence, então entradas exatas mais específicas
// vêm antes dos padrões de sufixo que as englobariam.
// Tabela estática, montada uma vez no início do processo.
var specialRegistry = []SpecialEntry{
	// piston_head só existe para suprimir o modelo genérico.
	{matcher: exactMatcher("piston_head"), Render: func(ctx *RenderContext) {}},

	{matcher: exactMatcher("lectern"), Render: renderLectern, NeedRenderModel: true, Animated: true},
	{matcher: exactMatcher("enchanting_table"), Render: renderEnchantingTable, NeedRenderModel: true, Animated: true},
	{matcher: exactMatcher("bell"), Render: renderBell, NeedRenderModel: true},
	{matcher: exactMatcher("decorated_pot"), Render: renderDecoratedPot},

	{matcher: suffixMatcher("shulker_box"), Render: renderShulkerBox},
	{matcher: suffixMatcher("chest"), Render: renderChest},
	{matcher: suffixMatcher("_bed"), Render: renderBed},

	// _wall_banner antes de banner para não ser sombreado pelo sufixo geral.
	{matcher: suffixMatcher("_wall_banner"), Render: renderBanner, Animated: true},
	{matcher: suffixMatcher("banner"), Render: renderBanner, Animated: true},

	// hanging_sign antes de sign pelo mesmo motivo.
	{matcher: suffixMatcher("hanging_sign"), Render: renderHangingSign},
	{matcher: suffixMatcher("sign"), Render: renderSign},

	{matcher: suffixMatcher("_skull"), Render: renderSkull},
	// dragon_head anima a mandíbula quando powered.
	{matcher: suffixMatcher("_head"), Render: renderSkull, Animated: true},
}

// LookupSpecial procura o renderer especial de um bloco.
// Retorna nil se o bloco segue o caminho do modelo genérico.
func LookupSpecial(blockName string) *SpecialEntry {
	for i := range specialRegistry {
		if specialRegistry[i].matcher.matches(blockName) {
			return &specialRegistry[i]
		}
	}
	return nil
}

// --- Helpers de transform ---

// compose multiplica matrizes na ordem de aplicação (primeira → última).
func compose(ms ...rl.Matrix) rl.Matrix {
	res := rl.MatrixIdentity()
	for _, m := range ms {
		res = rl.MatrixMultiply(res, m)
	}
	return res
}

func deg2rad(d float32) float32 {
	return d * rl.Deg2rad
}

// blockTransform monta a matriz modelo→mundo de um bloco: gira yawDeg em
// torno do centro do bloco (8,_,8 em unidades de modelo), escala para
// unidades de mundo e translada para a posição do bloco.
func (ctx *RenderContext) blockTransform(yawDeg float32) rl.Matrix {
	return compose(
		rl.MatrixTranslate(-8, 0, -8),
		rl.MatrixRotateY(deg2rad(yawDeg)),
		rl.MatrixTranslate(8, 0, 8),
		rl.MatrixScale(util.ModelScale, util.ModelScale, util.ModelScale),
		rl.MatrixTranslate(float32(ctx.X), float32(ctx.Y), float32(ctx.Z)),
	)
}

// facingYaw retorna o yaw (graus) derivado da property "facing".
func (ctx *RenderContext) facingYaw() float32 {
	return util.FacingRotation(ctx.State.Property("facing")).Y
}

// rotationYaw converte a property inteira "rotation" (0-15) em yaw.
func (ctx *RenderContext) rotationYaw() float32 {
	n, _ := ctx.State.IntProperty("rotation")
	return float32(n) * 22.5
}

// emit adiciona um modelo à cena com o material/sprites resolvidos.
func (ctx *RenderContext) emit(model BakedModel, mat assets.Material, sprites [][6]float32, transform rl.Matrix) {
	ctx.Scene.AddFragment(model, mat, sprites, transform, rl.White)
}

// emitTinted adiciona um modelo com tint de cor (ex: pano de banner).
func (ctx *RenderContext) emitTinted(model BakedModel, mat assets.Material, sprites [][6]float32, transform rl.Matrix, tint rl.Color) {
	ctx.Scene.AddFragment(model, mat, sprites, transform, tint)
}
