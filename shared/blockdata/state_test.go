package blockdata

import (
	"testing"

	"BlockVision/shared/util"
)

func TestBlockStateProperties(t *testing.T) {
	b := NewBlockState("minecraft:chest", map[string]string{
		"facing":   "west",
		"type":     "single",
		"rotation": "12",
	})

	if b.BaseName() != "chest" {
		t.Errorf("BaseName() = %q, want chest", b.BaseName())
	}
	if b.Property("type") != "single" {
		t.Errorf("Property(type) = %q", b.Property("type"))
	}
	if b.Facing() != util.DirWest {
		t.Errorf("Facing() = %v, want west", b.Facing())
	}
	if n, ok := b.IntProperty("rotation"); !ok || n != 12 {
		t.Errorf("IntProperty(rotation) = %d, %v", n, ok)
	}
	if _, ok := b.IntProperty("missing"); ok {
		t.Errorf("property ausente não deveria converter")
	}
	if b.BoolProperty("facing") {
		t.Errorf("BoolProperty só aceita a string true")
	}
}

func TestStructureNeighbors(t *testing.T) {
	s := NewStructure(util.NewBlockCoord(2, 2, 2))
	glass := NewBlockState("glass", nil)
	s.Set(0, 0, 0, glass)
	s.Set(1, 0, 0, glass)

	if s.At(0, 0, 0) != glass {
		t.Fatalf("At não retornou o bloco inserido")
	}
	if s.Neighbor(0, 0, 0, util.DirEast) != glass {
		t.Errorf("vizinho a leste deveria ser glass")
	}
	if s.Neighbor(0, 0, 0, util.DirWest) != nil {
		t.Errorf("fora da estrutura deve ser nil (ar)")
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}

func TestDyeColorFromBlockName(t *testing.T) {
	tests := []struct {
		block string
		ok    bool
	}{
		{"red_banner", true},
		{"light_blue_wall_banner", true},
		{"black_banner", true},
		{"chest", false},
	}

	for _, tt := range tests {
		_, ok := DyeColorFromBlockName(tt.block)
		if ok != tt.ok {
			t.Errorf("DyeColorFromBlockName(%q) ok = %v, want %v", tt.block, ok, tt.ok)
		}
	}

	c, _ := DyeColorFromBlockName("red_banner")
	if c.R != 176 || c.G != 46 || c.B != 38 {
		t.Errorf("cor de red incorreta: %+v", c)
	}

	if len(DyeColorList) != 16 {
		t.Errorf("a tabela de tinturas deve ter 16 entradas, tem %d", len(DyeColorList))
	}
}
