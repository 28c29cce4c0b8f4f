package meshing

import (
	"testing"

	"BlockVision/shared/util"
)

func TestShade(t *testing.T) {
	tests := []struct {
		dir  util.Direction
		want float32
	}{
		{util.DirDown, 0.5},
		{util.DirUp, 1.0},
		{util.DirNorth, 0.8},
		{util.DirSouth, 0.8},
		{util.DirEast, 0.6},
		{util.DirWest, 0.6},
	}

	for _, tt := range tests {
		if got := Shade(tt.dir, true); got != tt.want {
			t.Errorf("Shade(%s, true) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestShadeDisabled(t *testing.T) {
	// Elementos sem sombreamento recebem luz cheia em todas as faces.
	for _, dir := range util.AllDirections {
		if got := Shade(dir, false); got != 1.0 {
			t.Errorf("Shade(%s, false) = %v, want 1.0", dir, got)
		}
	}
}
