package meshing

import (
	"testing"

	"BlockVision/shared/blockdata"
	"BlockVision/shared/util"
)

func block(name string, props map[string]string) *blockdata.BlockState {
	return &blockdata.BlockState{Name: name, Properties: props}
}

func TestShouldSkipFace(t *testing.T) {
	tests := []struct {
		name  string
		this  *blockdata.BlockState
		other *blockdata.BlockState
		dir   util.Direction
		want  bool
	}{
		{
			name: "neve em pó contra neve em pó",
			this: block("minecraft:powder_snow", nil), other: block("powder_snow", nil),
			dir: util.DirUp, want: true,
		},
		{
			name: "neve em pó contra pedra",
			this: block("powder_snow", nil), other: block("stone", nil),
			dir: util.DirUp, want: false,
		},
		{
			name: "grades conectadas dos dois lados",
			this: block("iron_bars", map[string]string{"north": "true"}),
			other: block("iron_bars", map[string]string{"south": "true"}),
			dir: util.DirNorth, want: true,
		},
		{
			name: "grades com conexão só de um lado",
			this: block("iron_bars", map[string]string{"north": "true"}),
			other: block("iron_bars", map[string]string{"south": "false"}),
			dir: util.DirNorth, want: false,
		},
		{
			name: "grades empilhadas verticalmente não se conectam",
			this: block("iron_bars", map[string]string{"up": "true"}),
			other: block("iron_bars", map[string]string{"down": "true"}),
			dir: util.DirUp, want: false,
		},
		{
			name: "raízes de mangue empilhadas",
			this: block("mangrove_roots", nil), other: block("mangrove_roots", nil),
			dir: util.DirDown, want: true,
		},
		{
			name: "raízes lado a lado mantêm a face",
			this: block("mangrove_roots", nil), other: block("mangrove_roots", nil),
			dir: util.DirEast, want: false,
		},
		{
			name: "raízes de tipos diferentes mantêm a face",
			this: block("mangrove_roots", nil), other: block("muddy_mangrove_roots", nil),
			dir: util.DirUp, want: false,
		},
		{
			name: "vidro contra vidro",
			this: block("glass", nil), other: block("glass", nil),
			dir: util.DirWest, want: true,
		},
		{
			name: "vidro tingido por sufixo",
			this: block("red_stained_glass", nil), other: block("red_stained_glass", nil),
			dir: util.DirSouth, want: true,
		},
		{
			name: "vidros de cores diferentes mantêm a face",
			this: block("red_stained_glass", nil), other: block("blue_stained_glass", nil),
			dir: util.DirSouth, want: false,
		},
		{
			name: "folhas contra folhas iguais",
			this: block("oak_leaves", nil), other: block("oak_leaves", nil),
			dir: util.DirNorth, want: true,
		},
		{
			name: "grade de cobre por sufixo",
			this: block("waxed_copper_grate", nil), other: block("waxed_copper_grate", nil),
			dir: util.DirUp, want: true,
		},
		{
			name: "pedra contra pedra não é meio-transparente",
			this: block("stone", nil), other: block("stone", nil),
			dir: util.DirUp, want: false,
		},
		{
			name: "vizinho ausente (borda da estrutura)",
			this: block("glass", nil), other: nil,
			dir: util.DirUp, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSkipFace(tt.this, tt.other, tt.dir); got != tt.want {
				t.Errorf("ShouldSkipFace = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldSkipFaceSymmetric(t *testing.T) {
	// A decisão é simétrica: se A pula contra B, B pula contra A.
	a := block("iron_bars", map[string]string{"east": "true"})
	b := block("iron_bars", map[string]string{"west": "true"})

	if !ShouldSkipFace(a, b, util.DirEast) {
		t.Fatalf("face de A contra B deveria sumir")
	}
	if !ShouldSkipFace(b, a, util.DirWest) {
		t.Fatalf("face de B contra A deveria sumir")
	}
}
