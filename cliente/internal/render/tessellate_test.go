package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/cliente/internal/meshing"
	"BlockVision/shared/util"
)

func TestFaceUVsNormalization(t *testing.T) {
	face := meshing.ModelFace{UV: [4]float32{0, 0, 16, 16}}
	sprite := [6]float32{32, 64, 16, 16, 256, 256}

	uvs := faceUVs(face, sprite)

	// Base esquerda: u = (32+0)/256, v = (64+16)/256.
	if uvs[0] != ([2]float32{32.0 / 256, 80.0 / 256}) {
		t.Errorf("canto base-esq = %v", uvs[0])
	}
	// Topo direita: u = (32+16)/256, v = (64+0)/256.
	if uvs[2] != ([2]float32{48.0 / 256, 64.0 / 256}) {
		t.Errorf("canto topo-dir = %v", uvs[2])
	}
}

func TestFaceUVsRotation(t *testing.T) {
	face := meshing.ModelFace{UV: [4]float32{0, 0, 8, 8}}
	sprite := [6]float32{0, 0, 8, 8, 64, 64}

	plain := faceUVs(face, sprite)
	face.Rotation = 180
	rotated := faceUVs(face, sprite)

	// 180°: os cantos trocam em diagonal.
	for i := 0; i < 4; i++ {
		if rotated[i] != plain[(i+2)%4] {
			t.Errorf("canto %d girado = %v, want %v", i, rotated[i], plain[(i+2)%4])
		}
	}
}

func TestTessellateBatching(t *testing.T) {
	sprites := [][6]float32{{0, 0, 16, 16, 64, 64}}
	solid := meshing.BoxModel(meshing.BoxOptions{Size: [3]float32{16, 16, 16}, Shade: true})

	fragments := []meshing.Fragment{
		{Model: solid, Material: assets.Material{Pass: assets.PassSolid}, Sprites: sprites, Transform: rl.MatrixIdentity(), Tint: rl.White},
		{Model: solid, Material: assets.Material{Pass: assets.PassSolid}, Sprites: sprites, Transform: rl.MatrixIdentity(), Tint: rl.White},
		{Model: solid, Material: assets.Material{Pass: assets.PassCutout, DoubleSided: true}, Sprites: sprites, Transform: rl.MatrixIdentity(), Tint: rl.White},
	}

	buffers := tessellate(fragments)
	defer func() {
		for _, buf := range buffers {
			meshing.PutMeshBuffer(buf)
		}
	}()

	if len(buffers) != 2 {
		t.Fatalf("esperados 2 lotes (solid e cutout), vieram %d", len(buffers))
	}

	solidKey := batchKey{Pass: assets.PassSolid}
	buf, ok := buffers[solidKey]
	if !ok {
		t.Fatalf("lote solid ausente")
	}
	// 2 cubos × 6 faces × 2 triângulos × 3 vértices × 3 floats.
	if got, want := len(buf.Geometry.Vertices), 2*6*2*3*3; got != want {
		t.Errorf("vértices do lote solid = %d, want %d", got, want)
	}
}

func TestTessellateBakesShade(t *testing.T) {
	sprites := [][6]float32{{0, 0, 16, 16, 64, 64}}
	model := meshing.BoxModel(meshing.BoxOptions{
		Size:         [3]float32{16, 16, 16},
		VisibleFaces: []util.Direction{util.DirDown},
		Shade:        true,
	})
	fragments := []meshing.Fragment{{
		Model: model, Material: assets.Material{Pass: assets.PassSolid},
		Sprites: sprites, Transform: rl.MatrixIdentity(), Tint: rl.White,
	}}

	buffers := tessellate(fragments)
	buf := buffers[batchKey{Pass: assets.PassSolid}]
	if buf == nil || len(buf.Geometry.Colors) == 0 {
		t.Fatalf("lote vazio")
	}

	// Face DOWN com sombreamento: 255 × 0.5.
	if r := buf.Geometry.Colors[0]; r != 127 {
		t.Errorf("cor sombreada da face DOWN = %d, want 127", r)
	}
	if a := buf.Geometry.Colors[3]; a != 255 {
		t.Errorf("alpha não participa do sombreamento, veio %d", a)
	}
	for _, buf := range buffers {
		meshing.PutMeshBuffer(buf)
	}
}

func TestTessellateSkipsMissingSprite(t *testing.T) {
	model := meshing.BoxModel(meshing.BoxOptions{TextureSlot: 2, Size: [3]float32{16, 16, 16}})
	fragments := []meshing.Fragment{{
		Model: model, Material: assets.Material{Pass: assets.PassSolid},
		Sprites: [][6]float32{{0, 0, 16, 16, 64, 64}}, Transform: rl.MatrixIdentity(), Tint: rl.White,
	}}

	buffers := tessellate(fragments)
	if buf, ok := buffers[batchKey{Pass: assets.PassSolid}]; ok && len(buf.Geometry.Vertices) != 0 {
		t.Errorf("slot de sprite fora do alcance deveria ser pulado")
	}
	for _, buf := range buffers {
		meshing.PutMeshBuffer(buf)
	}
}
