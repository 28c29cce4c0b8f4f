package meshing

import (
	"testing"

	"BlockVision/cliente/internal/assets"
)

func TestResolveSpecialTexturesStatic(t *testing.T) {
	config := `{"specialBlocks": [{"name": "chest", "slots": [0, 1]}]}`
	manager, picker := testAssets(t, config)

	mats, rects := ResolveSpecialTextures("chest", picker, manager, assets.PassSolid)

	if len(mats) != 2 || len(rects) != 2 {
		t.Fatalf("esperados 2 slots, vieram %d materiais / %d rects", len(mats), len(rects))
	}
	for i, rect := range rects {
		// [x, y, w, h, larguraAtlas, alturaAtlas]
		want := [6]float32{float32(i) * 64, 0, 64, 64, 256, 256}
		if rect != want {
			t.Errorf("rect do slot %d = %v, want %v", i, rect, want)
		}
		if mats[i].Animated {
			t.Errorf("slot estático %d marcado como animado", i)
		}
	}
}

func TestResolveSpecialTexturesAnimated(t *testing.T) {
	config := `{"specialBlocks": [{"name": "sea_lantern", "slots": [3]}]}`
	manager, picker := testAssets(t, config)

	// O slot 3 vira animado com frames apontando para os rects 0 e 1.
	picker.AtlasMapping[3] = assets.AtlasEntry{
		Animated: &assets.AnimatedDescriptor{Frames: []int{0, 1}},
	}

	mats, rects := ResolveSpecialTextures("sea_lantern", picker, manager, assets.PassSolid)
	if len(mats) != 1 {
		t.Fatalf("esperado 1 slot, vieram %d", len(mats))
	}
	if !mats[0].Animated {
		t.Errorf("material de slot animado deve ser animado")
	}
	// Rect no atlas animado, com as dimensões do primeiro frame (64×64).
	want := [6]float32{0, 0, 64, 64, 64, 64}
	if rects[0] != want {
		t.Errorf("rect animado = %v, want %v", rects[0], want)
	}

	// Segunda resolução reutiliza a mesma colocação.
	_, again := ResolveSpecialTextures("sea_lantern", picker, manager, assets.PassSolid)
	if again[0] != rects[0] {
		t.Errorf("colocação animada deve ser idempotente: %v != %v", again[0], rects[0])
	}
}

func TestResolveSpecialTexturesUnknownSlotPanics(t *testing.T) {
	config := `{"specialBlocks": [{"name": "broken", "slots": [99]}]}`
	manager, picker := testAssets(t, config)

	defer func() {
		if recover() == nil {
			t.Errorf("slot sem mapeamento deveria causar pânico (violação de contrato)")
		}
	}()
	ResolveSpecialTextures("broken", picker, manager, assets.PassSolid)
}

func TestResolveSpecialTexturesCutoutDoubleSided(t *testing.T) {
	config := `{"specialBlocks": [{"name": "oak_sapling", "slots": [0]}]}`
	manager, picker := testAssets(t, config)

	mats, _ := ResolveSpecialTextures("oak_sapling", picker, manager, assets.PassCutout)
	if !mats[0].DoubleSided {
		t.Errorf("materiais cutout são dupla face")
	}
}
