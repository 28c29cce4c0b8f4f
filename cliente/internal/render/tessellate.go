package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/cliente/internal/meshing"
	"BlockVision/shared/util"
)

// batchKey agrupa fragmentos que podem compartilhar uma única malha/draw call.
type batchKey struct {
	Pass        assets.RenderPass
	Animated    bool
	DoubleSided bool
}

func keyOf(mat assets.Material) batchKey {
	return batchKey{Pass: mat.Pass, Animated: mat.Animated, DoubleSided: mat.DoubleSided}
}

// faceCorners devolve os 4 cantos de uma face do cuboide, em ordem CCW
// vista de fora (a primeira aresta é a base da textura).
func faceCorners(from, to [3]float32, dir util.Direction) [4][3]float32 {
	x0, y0, z0 := from[0], from[1], from[2]
	x1, y1, z1 := to[0], to[1], to[2]

	switch dir {
	case util.DirUp:
		return [4][3]float32{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}
	case util.DirDown:
		return [4][3]float32{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}
	case util.DirNorth:
		return [4][3]float32{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}
	case util.DirSouth:
		return [4][3]float32{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}
	case util.DirWest:
		return [4][3]float32{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}
	default: // DirEast
		return [4][3]float32{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}
	}
}

// faceUVs converte o retângulo UV da face (pixels do sprite) em coordenadas
// normalizadas do atlas, já aplicando a rotação da face (0/90/180/270) e o
// deslocamento do sprite dentro do atlas.
func faceUVs(face meshing.ModelFace, sprite [6]float32) [4][2]float32 {
	u0, v0, u1, v1 := face.UV[0], face.UV[1], face.UV[2], face.UV[3]
	ax, ay, aw, ah := sprite[0], sprite[1], sprite[4], sprite[5]

	norm := func(u, v float32) [2]float32 {
		return [2]float32{(ax + u) / aw, (ay + v) / ah}
	}

	// Cantos na ordem dos vértices: base-esq, base-dir, topo-dir, topo-esq.
	uvs := [4][2]float32{norm(u0, v1), norm(u1, v1), norm(u1, v0), norm(u0, v0)}

	shift := (face.Rotation / 90) % 4
	if shift < 0 {
		shift += 4
	}
	var rotated [4][2]float32
	for i := 0; i < 4; i++ {
		rotated[i] = uvs[(i+shift)%4]
	}
	return rotated
}

// modelMatrix compõe a rotação registrada no modelo (em torno do centro do
// bloco em unidades de modelo) com o transform do fragmento.
func modelMatrix(frag meshing.Fragment) rl.Matrix {
	rot := frag.Model.Rotation
	if rot == (util.Rotation{}) {
		return frag.Transform
	}
	m := rl.MatrixMultiply(rl.MatrixTranslate(-8, -8, -8), rl.MatrixRotateX(rot.X*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(rot.Y*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(8, 8, 8))
	return rl.MatrixMultiply(m, frag.Transform)
}

// tessellate tri-angula os fragmentos de um resultado em buffers por lote.
// Transform, sombreamento e tint são assados nos vértices aqui; o draw só
// precisa escolher textura/shader por lote.
func tessellate(fragments []meshing.Fragment) map[batchKey]*meshing.MeshBuffer {
	buffers := make(map[batchKey]*meshing.MeshBuffer)

	for _, frag := range fragments {
		key := keyOf(frag.Material)
		buf, ok := buffers[key]
		if !ok {
			buf = meshing.GetMeshBuffer()
			buffers[key] = buf
		}

		m := modelMatrix(frag)

		for _, elem := range frag.Model.Elements {
			for _, dir := range util.AllDirections {
				face, ok := elem.Faces[dir]
				if !ok {
					continue
				}
				if face.TextureID >= len(frag.Sprites) {
					continue
				}

				corners := faceCorners(elem.From, elem.To, dir)
				var world [4][3]float32
				for i, c := range corners {
					v := rl.Vector3Transform(rl.Vector3{X: c[0], Y: c[1], Z: c[2]}, m)
					world[i] = [3]float32{v.X, v.Y, v.Z}
				}

				// Normal transformada sem a translação.
				off := dir.Offset()
				base := rl.Vector3Transform(rl.Vector3{}, m)
				tip := rl.Vector3Transform(rl.Vector3{X: float32(off.X), Y: float32(off.Y), Z: float32(off.Z)}, m)
				n := rl.Vector3Normalize(rl.Vector3Subtract(tip, base))

				shade := meshing.Shade(dir, elem.Shade)
				color := [4]uint8{
					uint8(float32(frag.Tint.R) * shade),
					uint8(float32(frag.Tint.G) * shade),
					uint8(float32(frag.Tint.B) * shade),
					frag.Tint.A,
				}

				uvs := faceUVs(face, frag.Sprites[face.TextureID])
				buf.AddFaceUV(world[0], world[1], world[2], world[3],
					uvs[0], uvs[1], uvs[2], uvs[3],
					[3]float32{n.X, n.Y, n.Z}, color)
			}
		}
	}

	return buffers
}
