package assets

import (
	"fmt"
	"sync"
)

// RenderPass identifica o passe de desenho de um material.
type RenderPass string

const (
	PassSolid       RenderPass = "solid"
	PassCutout      RenderPass = "cutout"
	PassTranslucent RenderPass = "translucent"
)

// Material é o descritor leve retornado pelo picker. O render.Scene mapeia
// o descritor para o material raylib real na hora do upload (o meshing
// nunca toca em recursos de GPU).
type Material struct {
	Pass        RenderPass
	Animated    bool
	DoubleSided bool
}

// AnimatedDescriptor descreve um sprite animado no atlas estático:
// a lista de frames, cada um apontando para o rect estático de um slot.
type AnimatedDescriptor struct {
	Frames []int `json:"frames"`
}

// AtlasEntry é o mapeamento de um slot de textura: ou um rect estático
// [x,y,w,h] no atlas principal, ou um descritor animado.
type AtlasEntry struct {
	Rect     *[4]float32         `json:"rect,omitempty"`
	Animated *AnimatedDescriptor `json:"animated,omitempty"`
}

// AnimatedTextureManager aloca sob demanda espaço no atlas de sprites
// animados. A alocação usa prateleiras (shelf packing) e é idempotente por
// slot. O mutex existe porque a primeira colocação muta o empacotador
// compartilhado (workers de meshing rodam em paralelo).
type AnimatedTextureManager struct {
	mu   sync.Mutex
	size float32

	shelfX, shelfY, shelfH float32

	placed map[int][4]float32
}

// NewAnimatedTextureManager cria o alocador para um atlas quadrado size×size.
func NewAnimatedTextureManager(size float32) *AnimatedTextureManager {
	return &AnimatedTextureManager{
		size:   size,
		placed: make(map[int][4]float32),
	}
}

// AtlasSize retorna o lado do atlas animado.
func (m *AnimatedTextureManager) AtlasSize() float32 {
	return m.size
}

// PutNewTexture coloca (ou devolve a colocação anterior de) um sprite
// animado no atlas, nas dimensões do seu primeiro frame.
func (m *AnimatedTextureManager) PutNewTexture(slotID int, desc *AnimatedDescriptor, w, h float32) [4]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rect, ok := m.placed[slotID]; ok {
		return rect
	}

	if m.shelfX+w > m.size {
		// Prateleira cheia: abre a próxima.
		m.shelfY += m.shelfH
		m.shelfX = 0
		m.shelfH = 0
	}
	if h > m.shelfH {
		m.shelfH = h
	}

	rect := [4]float32{m.shelfX, m.shelfY, w, h}
	m.shelfX += w
	m.placed[slotID] = rect
	return rect
}

// Placements retorna uma cópia das colocações atuais (slot → rect no
// atlas animado). Usado pelo render para atualizar os frames por quadro.
func (m *AnimatedTextureManager) Placements() map[int][4]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[int][4]float32, len(m.placed))
	for slot, rect := range m.placed {
		out[slot] = rect
	}
	return out
}

// MaterialPicker expõe, por passe de render e por tipo de textura (estática
// ou animada), um descritor de material reutilizável, além do mapeamento de
// atlas e do alocador de sprites animados.
type MaterialPicker struct {
	AtlasWidth  float32
	AtlasHeight float32

	AtlasMapping map[int]AtlasEntry

	AnimatedTextures *AnimatedTextureManager
}

// NewMaterialPicker cria o picker para um atlas estático w×h e um atlas
// animado quadrado animSize×animSize.
func NewMaterialPicker(w, h, animSize float32) *MaterialPicker {
	return &MaterialPicker{
		AtlasWidth:       w,
		AtlasHeight:      h,
		AtlasMapping:     make(map[int]AtlasEntry),
		AnimatedTextures: NewAnimatedTextureManager(animSize),
	}
}

// StaticMaterial retorna o material estático do passe.
func (p *MaterialPicker) StaticMaterial(pass RenderPass) Material {
	return Material{Pass: pass, DoubleSided: pass == PassCutout}
}

// AnimatedMaterial retorna o material animado do passe.
func (p *MaterialPicker) AnimatedMaterial(pass RenderPass) Material {
	return Material{Pass: pass, Animated: true, DoubleSided: pass == PassCutout}
}

// StaticRect retorna o rect estático de um slot. Slot desconhecido ou
// animado é violação de contrato do chamador.
func (p *MaterialPicker) StaticRect(slotID int) ([4]float32, error) {
	entry, ok := p.AtlasMapping[slotID]
	if !ok || entry.Rect == nil {
		return [4]float32{}, fmt.Errorf("slot %d sem rect estático no atlas", slotID)
	}
	return *entry.Rect, nil
}
