package assets

import (
	"encoding/json"
	"fmt"
	"os"
)

// --- Estruturas JSON ---

// SpecialBlockEntry lista os slots de textura lógicos de um bloco especial.
// A ordem é estável e significativa (cada renderer sabe o que cada índice é).
type SpecialBlockEntry struct {
	Name  string `json:"name"`
	Slots []int  `json:"slots"`
}

// SpecialBlocksConfig é o root do special_blocks.json.
type SpecialBlocksConfig struct {
	SpecialBlocks []SpecialBlockEntry `json:"specialBlocks"`
	NameMapping   map[string]string   `json:"nameMapping,omitempty"`
	GenericSlots  map[string]int      `json:"genericSlots,omitempty"`
}

// --- Manager ---

// Manager é o model manager em memória que responde às consultas do mesher:
// quais slots de textura um bloco especial usa e qual slot genérico um bloco
// comum usa. Carregado uma vez no início, somente leitura depois.
type Manager struct {
	specialBlocks map[string][]int
	nameMapping   map[string]string
	genericSlots  map[string]int
}

// NewManager carrega o gerenciador a partir do special_blocks.json.
func NewManager(configDir string) (*Manager, error) {
	data, err := os.ReadFile(configDir + "/special_blocks.json")
	if err != nil {
		return nil, fmt.Errorf("falha ao ler special_blocks.json: %w", err)
	}
	var conf SpecialBlocksConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("falha ao parsear special_blocks.json: %w", err)
	}
	return newManagerFromConfig(&conf), nil
}

func newManagerFromConfig(conf *SpecialBlocksConfig) *Manager {
	m := &Manager{
		specialBlocks: make(map[string][]int, len(conf.SpecialBlocks)),
		nameMapping:   conf.NameMapping,
		genericSlots:  conf.GenericSlots,
	}
	for _, e := range conf.SpecialBlocks {
		m.specialBlocks[e.Name] = e.Slots
	}
	if m.nameMapping == nil {
		m.nameMapping = map[string]string{}
	}
	if m.genericSlots == nil {
		m.genericSlots = map[string]int{}
	}
	return m
}

// MapName aplica o nameMapping (ex: "oak_wall_sign" → "oak_sign").
// Nomes sem entrada passam inalterados. Seguro em receiver nil (nenhum
// mapeamento carregado).
func (m *Manager) MapName(blockName string) string {
	if m == nil {
		return blockName
	}
	if mapped, ok := m.nameMapping[blockName]; ok {
		return mapped
	}
	return blockName
}

// GetSpecialBlocksData retorna a lista ordenada de slots de textura do
// bloco. Retorna nil para blocos sem entrada (caminho genérico) e em
// receiver nil.
func (m *Manager) GetSpecialBlocksData(blockName string) []int {
	if m == nil {
		return nil
	}
	return m.specialBlocks[m.MapName(blockName)]
}

// GenericSlot retorna o slot de textura do modelo genérico de um bloco.
func (m *Manager) GenericSlot(blockName string) (int, bool) {
	if m == nil {
		return 0, false
	}
	slot, ok := m.genericSlots[m.MapName(blockName)]
	return slot, ok
}
