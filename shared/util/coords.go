package util

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// BlockCoord representa uma coordenada de bloco dentro da estrutura.
// X = leste/oeste, Y = nível vertical, Z = norte/sul (convenção Minecraft).
type BlockCoord struct {
	X, Y, Z int32
}

// NewBlockCoord cria uma nova coordenada de bloco.
func NewBlockCoord(x, y, z int32) BlockCoord {
	return BlockCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c BlockCoord) Add(other BlockCoord) BlockCoord {
	return BlockCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// AddDir retorna uma nova coordenada deslocada na direção especificada.
func (c BlockCoord) AddDir(dir Direction) BlockCoord {
	return c.Add(dir.Offset())
}

// String retorna a representação em string da coordenada.
func (c BlockCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// GameScale controla a escala de conversão bloco → mundo 3D.
const GameScale float32 = 1.0

// ModelScale converte unidades de modelo (1/16 de bloco) para unidades de mundo.
// Toda a geometria especial é construída em unidades de modelo (0-16).
const ModelScale float32 = GameScale / 16.0

// BlockToWorldPos converte uma coordenada de bloco para o canto de origem no mundo 3D.
func BlockToWorldPos(coord BlockCoord) rl.Vector3 {
	return rl.Vector3{
		X: float32(coord.X) * GameScale,
		Y: float32(coord.Y) * GameScale,
		Z: float32(coord.Z) * GameScale,
	}
}

// BlockToWorldCenter converte para o centro do bloco no mundo 3D.
func BlockToWorldCenter(coord BlockCoord) rl.Vector3 {
	pos := BlockToWorldPos(coord)
	pos.X += GameScale * 0.5
	pos.Y += GameScale * 0.5
	pos.Z += GameScale * 0.5
	return pos
}
