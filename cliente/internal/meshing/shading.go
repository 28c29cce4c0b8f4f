package meshing

import "BlockVision/shared/util"

// constantAmbientLight liga o modo de luz ambiente constante (0.9 para
// todas as faces). Mantido desligado; hook para iluminação futura.
const constantAmbientLight = false

// Shade retorna o multiplicador de luz de uma face pela sua direção.
// Com applyShade=false a face não recebe sombreamento direcional.
func Shade(dir util.Direction, applyShade bool) float32 {
	if constantAmbientLight {
		return 0.9
	}
	if !applyShade {
		return 1.0
	}

	switch dir {
	case util.DirDown:
		return 0.5
	case util.DirUp:
		return 1.0
	case util.DirNorth, util.DirSouth:
		return 0.8
	default: // leste/oeste
		return 0.6
	}
}
