package meshing

import (
	"BlockVision/shared/util"
)

// BoxOptions parametriza o Cuboid Model Builder.
// From/Size/PoseOffset em unidades de modelo (16 por bloco);
// TexOffset em pixels do atlas.
type BoxOptions struct {
	TextureSlot  int
	From         [3]float32
	Size         [3]float32
	TexOffset    [2]float32
	PoseOffset   [3]float32
	Rotation     util.Rotation
	VisibleFaces []util.Direction // nil = todas as 6
	Mirror       bool
	Shade        bool
}

// BoxModel constrói exatamente um cuboide com UVs no layout de cruz
// desdobrada: seis retângulos empacotados em torno da largura/altura/
// profundidade da caixa, de modo que uma única textura plana embrulha o
// cuboide. A face UP carrega rotação de 180° por conta da convenção de
// desdobramento. A rotação é registrada no modelo para o consumidor
// aplicar como transform, não assada nos vértices.
func BoxModel(opts BoxOptions) BakedModel {
	sx, sy, sz := opts.Size[0], opts.Size[1], opts.Size[2]
	u, v := opts.TexOffset[0], opts.TexOffset[1]

	faces := opts.VisibleFaces
	if faces == nil {
		faces = util.AllDirections
	}

	elem := Element{
		From: [3]float32{
			opts.From[0] + opts.PoseOffset[0],
			opts.From[1] + opts.PoseOffset[1],
			opts.From[2] + opts.PoseOffset[2],
		},
		Shade: opts.Shade,
		Faces: make(map[util.Direction]ModelFace, len(faces)),
	}
	elem.To = [3]float32{
		elem.From[0] + sx,
		elem.From[1] + sy,
		elem.From[2] + sz,
	}

	for _, dir := range faces {
		face := ModelFace{TextureID: opts.TextureSlot}
		if !opts.Mirror {
			switch dir {
			case util.DirUp:
				face.UV = [4]float32{u + sz, v, u + sz + sx, v + sz}
				face.Rotation = 180
			case util.DirDown:
				face.UV = [4]float32{u + sz + sx, v, u + sz + 2*sx, v + sz}
			case util.DirWest:
				face.UV = [4]float32{u, v + sz, u + sz, v + sz + sy}
			case util.DirNorth:
				face.UV = [4]float32{u + sz, v + sz, u + sz + sx, v + sz + sy}
			case util.DirEast:
				face.UV = [4]float32{u + sz + sx, v + sz, u + 2*sz + sx, v + sz + sy}
			case util.DirSouth:
				face.UV = [4]float32{u + 2*sz + sx, v + sz, u + 2*sz + 2*sx, v + sz + sy}
			}
		} else {
			// Espelhado: cada face ocupa uma região diferente do layout,
			// então o flip horizontal tem fórmula própria por face
			// (leste e oeste trocam de retângulo entre si).
			switch dir {
			case util.DirUp:
				face.UV = [4]float32{u + sz + sx, v, u + sz, v + sz}
				face.Rotation = 180
			case util.DirDown:
				face.UV = [4]float32{u + sz + 2*sx, v, u + sz + sx, v + sz}
			case util.DirWest:
				face.UV = [4]float32{u + 2*sz + sx, v + sz, u + sz + sx, v + sz + sy}
			case util.DirNorth:
				face.UV = [4]float32{u + sz + sx, v + sz, u + sz, v + sz + sy}
			case util.DirEast:
				face.UV = [4]float32{u + sz, v + sz, u, v + sz + sy}
			case util.DirSouth:
				face.UV = [4]float32{u + 2*sz + 2*sx, v + sz, u + 2*sz + sx, v + sz + sy}
			}
		}
		elem.Faces[dir] = face
	}

	return BakedModel{
		Elements: []Element{elem},
		Rotation: opts.Rotation,
	}
}

// TileModel constrói o cubo cheio de um bloco comum. Diferente do layout
// em cruz do BoxModel, o sprite de um bloco genérico é um tile quadrado:
// as seis faces usam o sprite inteiro [0,0,w,h], sem deslocamento.
func TileModel(slot int, texW, texH float32, visible []util.Direction, shade bool) BakedModel {
	if visible == nil {
		visible = util.AllDirections
	}

	elem := Element{
		From:  [3]float32{0, 0, 0},
		To:    [3]float32{16, 16, 16},
		Shade: shade,
		Faces: make(map[util.Direction]ModelFace, len(visible)),
	}
	for _, dir := range visible {
		elem.Faces[dir] = ModelFace{
			TextureID: slot,
			UV:        [4]float32{0, 0, texW, texH},
		}
	}

	return BakedModel{Elements: []Element{elem}}
}
