package blockdata

import (
	"strconv"
	"strings"

	"BlockVision/shared/util"
)

// BlockState representa o estado imutável de um bloco da estrutura.
// As properties são pares chave/valor opacos vindos do arquivo de estrutura
// (ex: facing→"north", type→"single"). Somente leitura para o renderer.
type BlockState struct {
	Name       string
	Properties map[string]string
}

// NewBlockState cria um estado de bloco.
func NewBlockState(name string, props map[string]string) *BlockState {
	return &BlockState{Name: name, Properties: props}
}

// Property retorna o valor bruto de uma property ("" se ausente).
func (b *BlockState) Property(key string) string {
	if b.Properties == nil {
		return ""
	}
	return b.Properties[key]
}

// BoolProperty retorna true se a property for a string "true".
func (b *BlockState) BoolProperty(key string) bool {
	return b.Property(key) == "true"
}

// IntProperty converte uma property numérica (ex: rotation de banners 0-15).
func (b *BlockState) IntProperty(key string) (int, bool) {
	v := b.Property(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Facing retorna a direção da property "facing" (DirNorth se ausente).
func (b *BlockState) Facing() util.Direction {
	d, _ := util.ParseDirection(b.Property("facing"))
	return d
}

// BaseName retorna o nome sem prefixo de namespace ("minecraft:chest" → "chest").
func (b *BlockState) BaseName() string {
	if i := strings.IndexByte(b.Name, ':'); i >= 0 {
		return b.Name[i+1:]
	}
	return b.Name
}
