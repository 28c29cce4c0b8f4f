package meshing

import (
	"log"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/blockdata"
	"BlockVision/shared/util"
)

// SectionSize é a aresta da seção cúbica processada por requisição.
const SectionSize int32 = 16

// Fragment é uma unidade de geometria pronta para upload: um modelo de
// cuboides, o material, os rects de sprite por slot e o transform
// modelo→mundo. O render triangula e agrupa por material.
type Fragment struct {
	Model     BakedModel
	Material  assets.Material
	Sprites   [][6]float32
	Transform rl.Matrix
	Tint      rl.Color
}

// FragmentBuffer acumula fragmentos durante a geração de uma seção.
// Implementa SceneSink.
type FragmentBuffer struct {
	Fragments []Fragment
}

func (b *FragmentBuffer) AddFragment(model BakedModel, mat assets.Material, sprites [][6]float32, transform rl.Matrix, tint rl.Color) {
	b.Fragments = append(b.Fragments, Fragment{
		Model:     model,
		Material:  mat,
		Sprites:   sprites,
		Transform: transform,
		Tint:      tint,
	})
}

// Request representa um pedido de processamento de uma seção da estrutura.
type Request struct {
	Origin    util.BlockCoord // canto da seção (múltiplos de SectionSize)
	Structure *blockdata.Structure
	MTime     int64   // versão dos dados no momento da requisição
	Time      float64 // tempo de animação dos renderers especiais
}

// Result contém os fragmentos gerados para uma seção.
type Result struct {
	Origin    util.BlockCoord
	MTime     int64
	Fragments []Fragment

	// Animated indica que a seção contém blocos especiais dependentes do
	// tempo; resultados assim não entram no cache.
	Animated bool
}

// Clone realiza uma cópia rasa segura de um Result (os fragmentos são
// imutáveis após gerados; só a slice externa precisa ser copiada).
func (r Result) Clone() Result {
	clone := r
	clone.Fragments = make([]Fragment, len(r.Fragments))
	copy(clone.Fragments, r.Fragments)
	return clone
}

// Mesher é a interface para geradores de malha de estrutura.
type Mesher interface {
	Enqueue(req Request) bool
	Results() <-chan Result
	Stop()
}

// StructureMesher gera fragmentos de malha para seções de estrutura num
// pool de workers.
type StructureMesher struct {
	requests    chan Request
	results     chan Result
	stop        chan struct{}
	Models      *assets.Manager
	Materials   *assets.MaterialPicker
	ResultStore *ResultStore
	pending     map[util.BlockCoord]bool
	pendingMu   sync.Mutex

	warned   map[string]bool
	warnedMu sync.Mutex
}

// NewStructureMesher cria e inicia um novo mesher.
func NewStructureMesher(workers int, models *assets.Manager, materials *assets.MaterialPicker, resultStore *ResultStore) *StructureMesher {
	m := &StructureMesher{
		requests:    make(chan Request, 2000),
		results:     make(chan Result, 2000),
		stop:        make(chan struct{}),
		Models:      models,
		Materials:   materials,
		ResultStore: resultStore,
		pending:     make(map[util.BlockCoord]bool),
		warned:      make(map[string]bool),
	}

	for i := 0; i < workers; i++ {
		go m.worker()
	}

	return m
}

func (m *StructureMesher) Enqueue(req Request) bool {
	m.pendingMu.Lock()
	if m.pending[req.Origin] {
		m.pendingMu.Unlock()
		return false
	}
	m.pending[req.Origin] = true
	m.pendingMu.Unlock()

	select {
	case m.requests <- req:
		return true
	default:
		// Fila cheia: remove do pendente para tentar depois
		m.pendingMu.Lock()
		delete(m.pending, req.Origin)
		m.pendingMu.Unlock()
		return false
	}
}

func (m *StructureMesher) Results() <-chan Result {
	return m.results
}

func (m *StructureMesher) Stop() {
	close(m.stop)
}

func (m *StructureMesher) worker() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no Mesher Worker: %v", r)
		}
	}()
	for {
		select {
		case req := <-m.requests:
			if m.ResultStore != nil {
				if cached, ok := m.ResultStore.Get(req.Origin, req.MTime); ok {
					m.pendingMu.Lock()
					delete(m.pending, req.Origin)
					m.pendingMu.Unlock()
					m.results <- cached
					continue
				}
			}

			res := m.Generate(req)

			// Seções animadas são regeradas a cada pedido; só as
			// estáticas entram no cache.
			if m.ResultStore != nil && !res.Animated {
				m.ResultStore.Store(res)
			}

			m.pendingMu.Lock()
			delete(m.pending, req.Origin)
			m.pendingMu.Unlock()
			m.results <- res
		case <-m.stop:
			return
		}
	}
}

// Generate transforma uma seção da estrutura em fragmentos de malha.
func (m *StructureMesher) Generate(req Request) Result {
	res := Result{
		Origin: req.Origin,
		MTime:  req.MTime,
	}

	buf := &FragmentBuffer{}

	for y := req.Origin.Y; y < req.Origin.Y+SectionSize; y++ {
		for z := req.Origin.Z; z < req.Origin.Z+SectionSize; z++ {
			for x := req.Origin.X; x < req.Origin.X+SectionSize; x++ {
				state := req.Structure.At(x, y, z)
				if state == nil {
					continue
				}
				if m.meshBlock(buf, req, x, y, z, state) {
					res.Animated = true
				}
			}
		}
	}

	res.Fragments = buf.Fragments
	return res
}

// meshBlock emite os fragmentos de um bloco. Retorna true se o bloco
// passou por um renderer especial dependente do tempo.
func (m *StructureMesher) meshBlock(buf *FragmentBuffer, req Request, x, y, z int32, state *blockdata.BlockState) bool {
	ctx := &RenderContext{
		Scene:     buf,
		X:         x,
		Y:         y,
		Z:         z,
		State:     state,
		Models:    m.Models,
		Materials: m.Materials,
		Structure: req.Structure,
		Time:      req.Time,
	}

	name := state.BaseName()
	special := LookupSpecial(name)
	animated := false
	if special != nil {
		special.Render(ctx)
		animated = special.Animated
		if !special.NeedRenderModel {
			return animated
		}
	}

	m.meshGenericBlock(ctx, name)
	return animated
}

// meshGenericBlock emite o cubo cheio de um bloco comum, com as faces
// ocultas removidas pelas regras de adjacência.
func (m *StructureMesher) meshGenericBlock(ctx *RenderContext, name string) {
	slot, ok := m.Models.GenericSlot(name)
	if !ok {
		m.warnOnce(name)
		return
	}

	var visible []util.Direction
	for _, dir := range util.AllDirections {
		neighbor := ctx.Structure.Neighbor(ctx.X, ctx.Y, ctx.Z, dir)
		if !ShouldSkipFace(ctx.State, neighbor, dir) {
			visible = append(visible, dir)
		}
	}
	if len(visible) == 0 {
		return
	}

	entry, ok := ctx.Materials.AtlasMapping[slot]
	if !ok {
		m.warnOnce(name)
		return
	}

	var mat assets.Material
	var rect [6]float32
	switch {
	case entry.Animated != nil && len(entry.Animated.Frames) > 0:
		// Slot animado (água, lava): coloca no atlas animado, como os
		// blocos especiais fazem.
		first, err := ctx.Materials.StaticRect(entry.Animated.Frames[0])
		if err != nil {
			m.warnOnce(name)
			return
		}
		placed := ctx.Materials.AnimatedTextures.PutNewTexture(slot, entry.Animated, first[2], first[3])
		size := ctx.Materials.AnimatedTextures.AtlasSize()
		mat = ctx.Materials.AnimatedMaterial(assets.PassSolid)
		rect = [6]float32{placed[0], placed[1], placed[2], placed[3], size, size}
	case entry.Rect != nil:
		r := *entry.Rect
		mat = ctx.Materials.StaticMaterial(assets.PassSolid)
		rect = [6]float32{r[0], r[1], r[2], r[3], ctx.Materials.AtlasWidth, ctx.Materials.AtlasHeight}
	default:
		m.warnOnce(name)
		return
	}

	model := TileModel(0, rect[2], rect[3], visible, true)
	ctx.emit(model, mat, [][6]float32{rect}, ctx.blockTransform(0))
}

// warnOnce loga um aviso por nome de bloco sem mapeamento, uma única vez.
func (m *StructureMesher) warnOnce(name string) {
	m.warnedMu.Lock()
	defer m.warnedMu.Unlock()
	if m.warned[name] {
		return
	}
	m.warned[name] = true
	log.Printf("[Mesher] AVISO: bloco %q sem slot de textura, ignorado", name)
}

// SectionOrigins retorna os cantos das seções que cobrem a estrutura.
func SectionOrigins(s *blockdata.Structure) []util.BlockCoord {
	var origins []util.BlockCoord
	for y := int32(0); y < s.Size.Y; y += SectionSize {
		for z := int32(0); z < s.Size.Z; z += SectionSize {
			for x := int32(0); x < s.Size.X; x += SectionSize {
				origins = append(origins, util.NewBlockCoord(x, y, z))
			}
		}
	}
	return origins
}
