package meshing

import (
	"fmt"

	"BlockVision/cliente/internal/assets"
)

// ResolveSpecialTextures resolve os slots lógicos de textura de um bloco
// especial em materiais e rects do atlas. O rect tem 6 componentes:
// [x, y, w, h, larguraDoAtlas, alturaDoAtlas].
//
// Slots animados são colocados sob demanda no atlas animado, nas dimensões
// do primeiro frame; a colocação é idempotente por slot. Slot desconhecido
// é violação de contrato do chamador (pânico, não erro recuperável).
func ResolveSpecialTextures(blockName string, picker *assets.MaterialPicker, models *assets.Manager, pass assets.RenderPass) ([]assets.Material, [][6]float32) {
	slots := models.GetSpecialBlocksData(blockName)

	materials := make([]assets.Material, 0, len(slots))
	rects := make([][6]float32, 0, len(slots))

	for _, slot := range slots {
		entry, ok := picker.AtlasMapping[slot]
		if !ok {
			panic(fmt.Sprintf("slot de textura desconhecido %d para o bloco %q", slot, blockName))
		}

		if entry.Animated != nil {
			if len(entry.Animated.Frames) == 0 {
				panic(fmt.Sprintf("slot animado %d sem frames para o bloco %q", slot, blockName))
			}
			first, err := picker.StaticRect(entry.Animated.Frames[0])
			if err != nil {
				panic(fmt.Sprintf("primeiro frame do slot %d inválido: %v", slot, err))
			}
			placed := picker.AnimatedTextures.PutNewTexture(slot, entry.Animated, first[2], first[3])
			size := picker.AnimatedTextures.AtlasSize()

			materials = append(materials, picker.AnimatedMaterial(pass))
			rects = append(rects, [6]float32{placed[0], placed[1], placed[2], placed[3], size, size})
			continue
		}

		if entry.Rect == nil {
			panic(fmt.Sprintf("slot %d sem mapeamento de atlas para o bloco %q", slot, blockName))
		}
		r := *entry.Rect
		materials = append(materials, picker.StaticMaterial(pass))
		rects = append(rects, [6]float32{r[0], r[1], r[2], r[3], picker.AtlasWidth, picker.AtlasHeight})
	}

	return materials, rects
}
