package blockdata

import (
	"BlockVision/shared/util"
)

// Structure armazena um recorte de estrutura como grade densa de blocos.
// nil significa ar. A grade é preenchida uma vez na carga e depois é
// somente leitura durante o passe de meshing.
type Structure struct {
	Size   util.BlockCoord
	blocks []*BlockState

	// MTime é a versão dos dados (usada pelo cache de meshing).
	MTime int64
}

// NewStructure cria uma estrutura vazia com as dimensões dadas.
func NewStructure(size util.BlockCoord) *Structure {
	return &Structure{
		Size:   size,
		blocks: make([]*BlockState, size.X*size.Y*size.Z),
	}
}

func (s *Structure) index(x, y, z int32) int32 {
	return (y*s.Size.Z+z)*s.Size.X + x
}

// InBounds verifica se a coordenada está dentro da estrutura.
func (s *Structure) InBounds(x, y, z int32) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < s.Size.X && y < s.Size.Y && z < s.Size.Z
}

// At retorna o bloco na coordenada dada (nil = ar ou fora da estrutura).
func (s *Structure) At(x, y, z int32) *BlockState {
	if !s.InBounds(x, y, z) {
		return nil
	}
	return s.blocks[s.index(x, y, z)]
}

// Set insere um bloco na coordenada dada.
func (s *Structure) Set(x, y, z int32, b *BlockState) {
	if !s.InBounds(x, y, z) {
		return
	}
	s.blocks[s.index(x, y, z)] = b
}

// Neighbor retorna o bloco adjacente na direção dada.
func (s *Structure) Neighbor(x, y, z int32, dir util.Direction) *BlockState {
	off := dir.Offset()
	return s.At(x+off.X, y+off.Y, z+off.Z)
}

// Each percorre todos os blocos não-vazios da estrutura.
func (s *Structure) Each(fn func(x, y, z int32, b *BlockState)) {
	for y := int32(0); y < s.Size.Y; y++ {
		for z := int32(0); z < s.Size.Z; z++ {
			for x := int32(0); x < s.Size.X; x++ {
				if b := s.blocks[s.index(x, y, z)]; b != nil {
					fn(x, y, z, b)
				}
			}
		}
	}
}

// Count retorna o número de blocos não-vazios.
func (s *Structure) Count() int {
	n := 0
	for _, b := range s.blocks {
		if b != nil {
			n++
		}
	}
	return n
}
