package assets

import (
	"sync"
	"testing"
)

func TestPutNewTextureShelfPacking(t *testing.T) {
	m := NewAnimatedTextureManager(64)

	a := m.PutNewTexture(1, nil, 32, 16)
	b := m.PutNewTexture(2, nil, 32, 16)
	if a != ([4]float32{0, 0, 32, 16}) {
		t.Errorf("primeira colocação = %v", a)
	}
	if b != ([4]float32{32, 0, 32, 16}) {
		t.Errorf("segunda colocação = %v", b)
	}

	// A prateleira está cheia: a próxima colocação abre outra, na altura
	// da mais alta textura da prateleira anterior.
	c := m.PutNewTexture(3, nil, 16, 16)
	if c != ([4]float32{0, 16, 16, 16}) {
		t.Errorf("terceira colocação deveria abrir nova prateleira, veio %v", c)
	}
}

func TestPutNewTextureIdempotent(t *testing.T) {
	m := NewAnimatedTextureManager(64)

	first := m.PutNewTexture(7, nil, 16, 16)
	again := m.PutNewTexture(7, nil, 16, 16)
	if first != again {
		t.Errorf("recolocação do mesmo slot deveria devolver o mesmo rect: %v != %v", first, again)
	}
}

func TestPutNewTextureConcurrent(t *testing.T) {
	m := NewAnimatedTextureManager(1024)

	var wg sync.WaitGroup
	rects := make([][4]float32, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rects[i] = m.PutNewTexture(i, nil, 16, 16)
		}(i)
	}
	wg.Wait()

	seen := make(map[[4]float32]int)
	for i, r := range rects {
		if prev, dup := seen[r]; dup {
			t.Errorf("slots %d e %d receberam o mesmo rect %v", prev, i, r)
		}
		seen[r] = i
	}
}

func TestMaterialDescriptors(t *testing.T) {
	p := NewMaterialPicker(256, 128, 64)

	if m := p.StaticMaterial(PassSolid); m.Animated || m.DoubleSided || m.Pass != PassSolid {
		t.Errorf("material sólido estático incorreto: %+v", m)
	}
	if m := p.StaticMaterial(PassCutout); !m.DoubleSided {
		t.Errorf("cutout deve ser dupla face")
	}
	if m := p.AnimatedMaterial(PassTranslucent); !m.Animated || m.DoubleSided {
		t.Errorf("material animado translúcido incorreto: %+v", m)
	}
}

func TestStaticRect(t *testing.T) {
	p := NewMaterialPicker(256, 256, 64)
	rect := [4]float32{16, 32, 16, 16}
	p.AtlasMapping[2] = AtlasEntry{Rect: &rect}
	p.AtlasMapping[3] = AtlasEntry{Animated: &AnimatedDescriptor{Frames: []int{2}}}

	if got, err := p.StaticRect(2); err != nil || got != rect {
		t.Errorf("StaticRect(2) = %v, %v", got, err)
	}
	if _, err := p.StaticRect(99); err == nil {
		t.Errorf("slot inexistente deveria falhar")
	}
	if _, err := p.StaticRect(3); err == nil {
		t.Errorf("slot animado não tem rect estático")
	}
}
