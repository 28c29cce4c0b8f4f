package meshing

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/blockdata"
)

// testAssets monta um Manager a partir de um special_blocks.json temporário
// e um picker com rects estáticos para os slots 0-3.
func testAssets(t *testing.T, config string) (*assets.Manager, *assets.MaterialPicker) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "special_blocks.json"), []byte(config), 0o644); err != nil {
		t.Fatalf("falha ao escrever config de teste: %v", err)
	}
	manager, err := assets.NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	picker := assets.NewMaterialPicker(256, 256, 64)
	for slot := 0; slot < 4; slot++ {
		rect := [4]float32{float32(slot) * 64, 0, 64, 64}
		picker.AtlasMapping[slot] = assets.AtlasEntry{Rect: &rect}
	}
	return manager, picker
}

func testContext(t *testing.T, config, blockName string, props map[string]string) (*RenderContext, *FragmentBuffer) {
	t.Helper()

	manager, picker := testAssets(t, config)
	buf := &FragmentBuffer{}
	return &RenderContext{
		Scene:     buf,
		X:         1, Y: 2, Z: 3,
		State:     &blockdata.BlockState{Name: blockName, Properties: props},
		Models:    manager,
		Materials: picker,
		Time:      40,
	}, buf
}

// captureLog coleta a saída do log padrão durante fn.
func captureLog(fn func()) string {
	var out bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&out)
	defer log.SetOutput(prev)
	fn()
	return out.String()
}

const chestConfig = `{
	"specialBlocks": [{"name": "chest", "slots": [0, 1, 2]}],
	"nameMapping": {"trapped_chest": "chest"}
}`

func TestRenderChestSingle(t *testing.T) {
	ctx, buf := testContext(t, chestConfig, "minecraft:chest",
		map[string]string{"facing": "north", "type": "single"})

	renderChest(ctx)

	// Corpo, tampa e fecho.
	if len(buf.Fragments) != 3 {
		t.Fatalf("baú single deve emitir 3 cuboides, veio %d", len(buf.Fragments))
	}
	for i, frag := range buf.Fragments {
		if frag.Material.Pass != assets.PassSolid {
			t.Errorf("fragmento %d no passe %s, esperado solid", i, frag.Material.Pass)
		}
	}
}

func TestRenderChestNameMapping(t *testing.T) {
	ctx, buf := testContext(t, chestConfig, "trapped_chest",
		map[string]string{"facing": "south", "type": "single"})

	renderChest(ctx)

	if len(buf.Fragments) != 3 {
		t.Fatalf("trapped_chest deve mapear para chest e emitir 3 cuboides, veio %d", len(buf.Fragments))
	}
}

func TestRenderChestUnknownType(t *testing.T) {
	ctx, buf := testContext(t, chestConfig, "chest",
		map[string]string{"facing": "north", "type": "sideways"})

	out := captureLog(func() { renderChest(ctx) })

	if len(buf.Fragments) != 0 {
		t.Errorf("type desconhecido não deve emitir geometria, veio %d fragmentos", len(buf.Fragments))
	}
	if n := strings.Count(out, "AVISO"); n != 1 {
		t.Errorf("esperado exatamente 1 aviso, vieram %d:\n%s", n, out)
	}
}

func TestRenderShulkerUnknownFacing(t *testing.T) {
	config := `{"specialBlocks": [{"name": "shulker_box", "slots": [0]}]}`
	ctx, buf := testContext(t, config, "shulker_box", map[string]string{"facing": "diagonal"})

	out := captureLog(func() { renderShulkerBox(ctx) })

	if len(buf.Fragments) != 0 {
		t.Errorf("facing desconhecido não deve emitir geometria")
	}
	if !strings.Contains(out, "AVISO") {
		t.Errorf("facing desconhecido deveria logar aviso")
	}
}

func TestBannerSwayBounds(t *testing.T) {
	lo := math.Pi * -0.0225
	hi := math.Pi * -0.0025

	coords := []struct{ x, y, z int32 }{
		{0, 0, 0}, {1, 2, 3}, {-5, 7, -11}, {100, 64, 100},
	}
	for _, c := range coords {
		for _, time := range []float64{0, 12.5, 99.9, 100, 1234.56} {
			got := BannerSway(c.x, c.y, c.z, time)
			if got < lo || got > hi {
				t.Errorf("BannerSway(%d,%d,%d,%v) = %v fora de [%v, %v]",
					c.x, c.y, c.z, time, got, lo, hi)
			}
		}
	}
}

func TestBannerSwayCyclic(t *testing.T) {
	// O vento repete a cada 100 unidades de tempo.
	a := BannerSway(4, 5, 6, 13)
	b := BannerSway(4, 5, 6, 113)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("balanço deveria ser cíclico em 100: %v != %v", a, b)
	}
}

const bannerConfig = `{
	"specialBlocks": [
		{"name": "banner", "slots": [0]}
	],
	"nameMapping": {
		"red_banner": "banner",
		"red_wall_banner": "banner",
		"light_blue_banner": "banner"
	}
}`

func TestRenderBannerStanding(t *testing.T) {
	ctx, buf := testContext(t, bannerConfig, "red_banner", map[string]string{"rotation": "4"})

	renderBanner(ctx)

	// Mastro, barra e pano.
	if len(buf.Fragments) != 3 {
		t.Fatalf("banner de chão deve emitir 3 cuboides, veio %d", len(buf.Fragments))
	}

	flag := buf.Fragments[len(buf.Fragments)-1]
	want, _ := blockdata.DyeColorFor("red")
	if flag.Tint != want {
		t.Errorf("tint do pano = %+v, want %+v", flag.Tint, want)
	}
}

func TestRenderBannerWall(t *testing.T) {
	ctx, buf := testContext(t, bannerConfig, "red_wall_banner", map[string]string{"facing": "north"})

	renderBanner(ctx)

	// Sem mastro: só barra e pano.
	if len(buf.Fragments) != 2 {
		t.Fatalf("banner de parede deve emitir 2 cuboides, veio %d", len(buf.Fragments))
	}
}

func TestRenderBannerCompositeDye(t *testing.T) {
	ctx, buf := testContext(t, bannerConfig, "light_blue_banner", map[string]string{"rotation": "0"})

	renderBanner(ctx)

	flag := buf.Fragments[len(buf.Fragments)-1]
	want, _ := blockdata.DyeColorFor("light_blue")
	if flag.Tint != want {
		t.Errorf("tint light_blue = %+v, want %+v", flag.Tint, want)
	}
}

const skullConfig = `{
	"specialBlocks": [
		{"name": "skeleton_skull", "slots": [0]},
		{"name": "player_head", "slots": [0]},
		{"name": "dragon_head", "slots": [0]},
		{"name": "piglin_head", "slots": [0]}
	]
}`

func TestRenderSkullDispatch(t *testing.T) {
	tests := []struct {
		block string
		frags int
	}{
		{"skeleton_skull", 1}, // cubo simples
		{"dragon_head", 3},    // crânio, focinho, mandíbula
		{"piglin_head", 4},    // cabeça, focinho, 2 orelhas
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			ctx, buf := testContext(t, skullConfig, tt.block, map[string]string{"rotation": "8"})
			renderSkull(ctx)
			if len(buf.Fragments) != tt.frags {
				t.Errorf("%s emitiu %d fragmentos, esperados %d", tt.block, len(buf.Fragments), tt.frags)
			}
		})
	}
}

func TestRenderSkullPlayerPass(t *testing.T) {
	ctx, buf := testContext(t, skullConfig, "player_head", map[string]string{"rotation": "0"})
	renderSkull(ctx)

	if len(buf.Fragments) == 0 {
		t.Fatalf("player_head não emitiu geometria")
	}
	if pass := buf.Fragments[0].Material.Pass; pass != assets.PassTranslucent {
		t.Errorf("player_head deve usar o passe translucent, veio %s", pass)
	}
	ctx2, buf2 := testContext(t, skullConfig, "skeleton_skull", map[string]string{"rotation": "0"})
	renderSkull(ctx2)
	if pass := buf2.Fragments[0].Material.Pass; pass != assets.PassCutout {
		t.Errorf("crânios comuns usam cutout, veio %s", pass)
	}
}

const signConfig = `{
	"specialBlocks": [{"name": "oak_sign", "slots": [0]}],
	"nameMapping": {
		"oak_wall_sign": "oak_sign",
		"oak_hanging_sign": "oak_sign",
		"oak_wall_hanging_sign": "oak_sign"
	}
}`

func TestRenderSign(t *testing.T) {
	floor, floorBuf := testContext(t, signConfig, "oak_sign", map[string]string{"rotation": "12"})
	renderSign(floor)
	if len(floorBuf.Fragments) != 2 {
		t.Errorf("placa de chão: mastro + tábua, veio %d", len(floorBuf.Fragments))
	}

	wall, wallBuf := testContext(t, signConfig, "oak_wall_sign", map[string]string{"facing": "east"})
	renderSign(wall)
	if len(wallBuf.Fragments) != 1 {
		t.Errorf("placa de parede: só a tábua, veio %d", len(wallBuf.Fragments))
	}
}

func TestRenderHangingSign(t *testing.T) {
	tests := []struct {
		name  string
		block string
		props map[string]string
		frags int
	}{
		{"teto com correntes retas", "oak_hanging_sign", map[string]string{"rotation": "0", "attached": "false"}, 3},
		{"teto com correntes em V", "oak_hanging_sign", map[string]string{"rotation": "0", "attached": "true"}, 3},
		{"parede com barra", "oak_wall_hanging_sign", map[string]string{"facing": "south"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t, signConfig, tt.block, tt.props)
			renderHangingSign(ctx)
			if len(buf.Fragments) != tt.frags {
				t.Errorf("%s emitiu %d fragmentos, esperados %d", tt.block, len(buf.Fragments), tt.frags)
			}
		})
	}
}

func TestLookupSpecial(t *testing.T) {
	tests := []struct {
		block       string
		wantSpecial bool
		needModel   bool
		animated    bool
	}{
		{"piston_head", true, false, false},
		{"lectern", true, true, true},
		{"enchanting_table", true, true, true},
		{"bell", true, true, false},
		{"decorated_pot", true, false, false},
		{"ender_chest", true, false, false},
		{"red_shulker_box", true, false, false},
		{"black_bed", true, false, false},
		{"red_wall_banner", true, false, true},
		{"spruce_hanging_sign", true, false, false},
		{"wither_skeleton_skull", true, false, false},
		{"zombie_head", true, false, true},
		{"stone", false, false, false},
		{"chiseled_bookshelf", false, false, false},
	}

	for _, tt := range tests {
		entry := LookupSpecial(tt.block)
		if (entry != nil) != tt.wantSpecial {
			t.Errorf("LookupSpecial(%q) especial=%v, want %v", tt.block, entry != nil, tt.wantSpecial)
			continue
		}
		if entry == nil {
			continue
		}
		if entry.NeedRenderModel != tt.needModel {
			t.Errorf("LookupSpecial(%q).NeedRenderModel = %v, want %v", tt.block, entry.NeedRenderModel, tt.needModel)
		}
		if entry.Animated != tt.animated {
			t.Errorf("LookupSpecial(%q).Animated = %v, want %v", tt.block, entry.Animated, tt.animated)
		}
	}
}

func TestPistonHeadSuppressesModel(t *testing.T) {
	ctx, buf := testContext(t, `{"specialBlocks": []}`, "piston_head", nil)
	entry := LookupSpecial("piston_head")
	if entry == nil {
		t.Fatalf("piston_head deveria ter entrada especial")
	}
	entry.Render(ctx)
	if len(buf.Fragments) != 0 {
		t.Errorf("piston_head não emite geometria própria")
	}
}
