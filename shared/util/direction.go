package util

// Direction representa uma das 6 direções axiais do mundo.
// Convenção Minecraft: North = -Z, South = +Z, East = +X, West = -X.
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// AllDirections lista as 6 direções na ordem canônica (Down, Up, N, S, E, W).
var AllDirections = []Direction{DirDown, DirUp, DirNorth, DirSouth, DirEast, DirWest}

// HorizontalDirections lista apenas as direções horizontais.
var HorizontalDirections = []Direction{DirNorth, DirSouth, DirEast, DirWest}

var dirOpposites = [6]Direction{DirUp, DirDown, DirSouth, DirNorth, DirWest, DirEast}

var dirNames = [6]string{"down", "up", "north", "south", "east", "west"}

// dirOffsets mapeia direção → passo unitário em coordenadas de bloco.
var dirOffsets = [6]BlockCoord{
	{0, -1, 0}, // down
	{0, 1, 0},  // up
	{0, 0, -1}, // north
	{0, 0, 1},  // south
	{1, 0, 0},  // east
	{-1, 0, 0}, // west
}

// Opposite retorna a direção oposta.
func (d Direction) Opposite() Direction {
	return dirOpposites[d]
}

// Offset retorna o passo unitário da direção.
func (d Direction) Offset() BlockCoord {
	return dirOffsets[d]
}

// StepX retorna o deslocamento em X (-1, 0 ou 1).
func (d Direction) StepX() int32 {
	return dirOffsets[d].X
}

// StepZ retorna o deslocamento em Z (-1, 0 ou 1).
func (d Direction) StepZ() int32 {
	return dirOffsets[d].Z
}

// IsHorizontal indica se a direção fica no plano XZ.
func (d Direction) IsHorizontal() bool {
	return d >= DirNorth
}

// IsVertical indica se a direção é Up ou Down.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// String retorna o nome em minúsculas, igual ao valor da property "facing".
func (d Direction) String() string {
	return dirNames[d]
}

// ParseDirection converte o valor de uma property (ex: "north") em Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range dirNames {
		if name == s {
			return Direction(i), true
		}
	}
	return DirNorth, false
}

// Rotation descreve uma orientação derivada de facing, em graus.
type Rotation struct {
	X float32
	Y float32
}

// facingRotations segue o mapeamento do renderer original:
// south→0°, west→90°, north→180°, east→270° em torno do eixo vertical.
var facingRotations = map[string]Rotation{
	"south": {X: 0, Y: 0},
	"west":  {X: 0, Y: 90},
	"north": {X: 0, Y: 180},
	"east":  {X: 0, Y: 270},
	"up":    {X: -90, Y: 0},
	"down":  {X: 90, Y: 0},
}

// FacingRotation retorna a rotação associada a um valor de "facing".
// Valores desconhecidos retornam rotação identidade.
func FacingRotation(facing string) Rotation {
	if r, ok := facingRotations[facing]; ok {
		return r
	}
	return Rotation{}
}
