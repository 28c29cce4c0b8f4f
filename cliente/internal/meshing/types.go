package meshing

import (
	"sync"

	"BlockVision/cliente/internal/assets"
	"BlockVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelFace descreve uma face visível de um cuboide.
// UV em coordenadas de pixel do atlas: [u0, v0, u1, v1].
type ModelFace struct {
	TextureID int
	UV        [4]float32
	Rotation  int // 0, 90, 180 ou 270
}

// Element é um cuboide em unidades de modelo (16 por bloco).
// O mapa Faces só contém as direções visíveis solicitadas.
type Element struct {
	From  [3]float32
	To    [3]float32
	Shade bool
	Faces map[util.Direction]ModelFace
}

// BakedModel é o resultado do Cuboid Model Builder: um ou mais elementos
// mais uma rotação de modelo que o consumidor aplica como transform
// (não é assada nas posições dos vértices).
type BakedModel struct {
	Elements []Element
	Rotation util.Rotation
}

// SceneSink recebe os fragmentos de malha emitidos pelos renderers.
// Implementado pelo render.Scene; o meshing nunca lê de volta.
type SceneSink interface {
	AddFragment(model BakedModel, mat assets.Material, sprites [][6]float32, transform rl.Matrix, tint rl.Color)
}

// GeometryData contém os buffers de vértices de uma malha triangulada.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
}

// Clone cria uma cópia profunda dos dados.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = append(make([]float32, 0, len(g.Vertices)), g.Vertices...)
	}
	if len(g.Normals) > 0 {
		clone.Normals = append(make([]float32, 0, len(g.Normals)), g.Normals...)
	}
	if len(g.Colors) > 0 {
		clone.Colors = append(make([]uint8, 0, len(g.Colors)), g.Colors...)
	}
	if len(g.UVs) > 0 {
		clone.UVs = append(make([]float32, 0, len(g.UVs)), g.UVs...)
	}
	return clone
}

// Pool global para reciclar MeshBuffers e evitar pressão de GC.
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: GeometryData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Colors:   make([]uint8, 0, 4096),
				UVs:      make([]float32, 0, 2048),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera o buffer e devolve a memória para o pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	b.Geometry.UVs = b.Geometry.UVs[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddFaceUV adiciona uma face retangular (dois triângulos) com UVs.
func (b *MeshBuffer) AddFaceUV(v1, v2, v3, v4 [3]float32, uv1, uv2, uv3, uv4 [2]float32, n [3]float32, c [4]uint8) {
	b.addVertexUV(v1, uv1, n, c)
	b.addVertexUV(v2, uv2, n, c)
	b.addVertexUV(v3, uv3, n, c)

	b.addVertexUV(v1, uv1, n, c)
	b.addVertexUV(v3, uv3, n, c)
	b.addVertexUV(v4, uv4, n, c)
}

func (b *MeshBuffer) addVertexUV(v [3]float32, uv [2]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}
