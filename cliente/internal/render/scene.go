package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/cliente/internal/meshing"
	"BlockVision/shared/util"
)

// passOrder é a ordem fixa de desenho dos passes.
var passOrder = []assets.RenderPass{assets.PassSolid, assets.PassCutout, assets.PassTranslucent}

// SectionModel guarda as malhas GPU de uma seção da estrutura, uma por lote.
type SectionModel struct {
	Origin util.BlockCoord
	Models map[batchKey]rl.Model
	MTime  int64
	Active bool
}

// Scene é o destino final dos fragmentos de malha: converte resultados do
// mesher em modelos raylib e os desenha em três passes (solid → cutout →
// translucent).
type Scene struct {
	mu       sync.RWMutex
	Sections map[util.BlockCoord]*SectionModel

	Atlas    rl.Texture2D
	Animated *AnimatedAtlas
	Picker   *assets.MaterialPicker

	CutoutShader rl.Shader
	hasShader    bool
}

// NewScene cria a cena para um atlas já carregado.
func NewScene(picker *assets.MaterialPicker, atlas rl.Texture2D, animated *AnimatedAtlas) *Scene {
	s := &Scene{
		Sections: make(map[util.BlockCoord]*SectionModel),
		Atlas:    atlas,
		Animated: animated,
		Picker:   picker,
	}
	if rl.IsWindowReady() {
		s.CutoutShader = rl.LoadShaderFromMemory(blockVertexShader, cutoutFragmentShader)
		s.hasShader = s.CutoutShader.ID != 0
	}
	return s
}

// SectionVersion retorna o MTime da seção carregada (-1 se ausente).
func (s *Scene) SectionVersion(origin util.BlockCoord) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sm, ok := s.Sections[origin]; ok {
		return sm.MTime
	}
	return -1
}

// UploadResult converte um resultado de meshing em modelos GPU da seção.
func (s *Scene) UploadResult(res meshing.Result) {
	if !rl.IsWindowReady() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.Sections[res.Origin]; ok {
		if old.Active {
			for _, m := range old.Models {
				rl.UnloadModel(m)
			}
		}
		delete(s.Sections, res.Origin)
	}

	if len(res.Fragments) == 0 {
		return
	}

	sm := &SectionModel{
		Origin: res.Origin,
		Models: make(map[batchKey]rl.Model),
		MTime:  res.MTime,
		Active: true,
	}

	buffers := tessellate(res.Fragments)
	for key, buf := range buffers {
		if len(buf.Geometry.Vertices) > 0 {
			mesh := geometryToMesh(buf.Geometry)
			rl.UploadMesh(&mesh, false)
			freeMeshRAM(&mesh)
			model := rl.LoadModelFromMesh(mesh)
			if model.MaterialCount > 0 {
				materials := unsafe.Slice(model.Materials, model.MaterialCount)
				tex := s.Atlas
				if key.Animated && s.Animated != nil {
					tex = s.Animated.Texture
				}
				rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
				if key.Pass == assets.PassCutout && s.hasShader {
					materials[0].Shader = s.CutoutShader
				}
			}
			sm.Models[key] = model
		}
		meshing.PutMeshBuffer(buf)
	}

	s.Sections[res.Origin] = sm
}

// Draw desenha todas as seções, passe a passe.
func (s *Scene) Draw() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, pass := range passOrder {
		if pass == assets.PassTranslucent {
			rl.BeginBlendMode(rl.BlendAlpha)
		}
		for _, sm := range s.Sections {
			if !sm.Active {
				continue
			}
			for key, model := range sm.Models {
				if key.Pass != pass || model.MeshCount == 0 {
					continue
				}
				if key.DoubleSided {
					rl.DisableBackfaceCulling()
				}
				rl.DrawModel(model, rl.Vector3{}, 1.0, rl.White)
				if key.DoubleSided {
					rl.EnableBackfaceCulling()
				}
			}
		}
		if pass == assets.PassTranslucent {
			rl.EndBlendMode()
		}
	}
}

// Clear descarta todos os modelos (rebuild total da estrutura).
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sm := range s.Sections {
		if sm.Active {
			for _, m := range sm.Models {
				rl.UnloadModel(m)
			}
		}
	}
	s.Sections = make(map[util.BlockCoord]*SectionModel)
}

// Unload libera todos os recursos GPU da cena.
func (s *Scene) Unload() {
	s.Clear()
	if s.hasShader {
		rl.UnloadShader(s.CutoutShader)
		s.hasShader = false
	}
}

// DrawSelection desenha o contorno de destaque de um bloco.
func (s *Scene) DrawSelection(coord util.BlockCoord) {
	pos := util.BlockToWorldCenter(coord)
	rl.DrawCubeWires(pos, util.GameScale*1.01, util.GameScale*1.01, util.GameScale*1.01, rl.Yellow)
}

// geometryToMesh copia os buffers Go para memória C no layout do raylib.
func geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(len(data.Vertices) / 3)
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a cópia em RAM após o upload para a GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
}
