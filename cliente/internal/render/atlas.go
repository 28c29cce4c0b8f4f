package render

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
)

// atlasConfig é o root do atlas.json.
type atlasConfig struct {
	Texture      string                       `json:"texture"`
	Width        float32                      `json:"width"`
	Height       float32                      `json:"height"`
	AnimatedSize float32                      `json:"animatedSize"`
	AnimatedFPS  float64                      `json:"animatedFps"`
	Slots        map[string]assets.AtlasEntry `json:"slots"`
}

// LoadAtlas lê o atlas.json de um diretório de assets, carrega a textura do
// atlas estático e monta o MaterialPicker com o mapeamento de slots.
func LoadAtlas(dir string) (*assets.MaterialPicker, rl.Texture2D, *AnimatedAtlas, error) {
	data, err := os.ReadFile(filepath.Join(dir, "atlas.json"))
	if err != nil {
		return nil, rl.Texture2D{}, nil, fmt.Errorf("falha ao ler atlas.json: %w", err)
	}
	var conf atlasConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, rl.Texture2D{}, nil, fmt.Errorf("falha ao parsear atlas.json: %w", err)
	}
	if conf.AnimatedSize == 0 {
		conf.AnimatedSize = 256
	}
	if conf.AnimatedFPS == 0 {
		conf.AnimatedFPS = 8
	}

	picker := assets.NewMaterialPicker(conf.Width, conf.Height, conf.AnimatedSize)
	for key, entry := range conf.Slots {
		slot, err := strconv.Atoi(key)
		if err != nil {
			return nil, rl.Texture2D{}, nil, fmt.Errorf("slot inválido %q no atlas.json", key)
		}
		picker.AtlasMapping[slot] = entry
	}

	var atlas rl.Texture2D
	var animated *AnimatedAtlas
	if rl.IsWindowReady() {
		path := filepath.Join(dir, conf.Texture)
		atlas = rl.LoadTexture(path)
		if atlas.ID == 0 {
			return nil, rl.Texture2D{}, nil, fmt.Errorf("falha ao carregar textura do atlas: %s", path)
		}
		rl.SetTextureFilter(atlas, rl.FilterPoint)
		log.Printf("[Render] Atlas carregado: %s (%dx%d, %d slots)",
			path, atlas.Width, atlas.Height, len(picker.AtlasMapping))

		animated = NewAnimatedAtlas(picker, path, conf.AnimatedFPS)
	}

	return picker, atlas, animated, nil
}

// AnimatedAtlas mantém a textura quadrada dos sprites animados e copia,
// quadro a quadro, o frame atual de cada slot colocado.
type AnimatedAtlas struct {
	Texture rl.Texture2D

	picker    *assets.MaterialPicker
	source    rl.Image
	fps       float64
	lastFrame map[int]int
}

// NewAnimatedAtlas cria o atlas animado a partir da imagem fonte do atlas
// estático (os frames são recortes dela).
func NewAnimatedAtlas(picker *assets.MaterialPicker, sourcePath string, fps float64) *AnimatedAtlas {
	size := int(picker.AnimatedTextures.AtlasSize())
	blank := rl.GenImageColor(size, size, rl.Blank)
	tex := rl.LoadTextureFromImage(blank)
	rl.UnloadImage(blank)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	src := rl.LoadImage(sourcePath)

	return &AnimatedAtlas{
		Texture:   tex,
		picker:    picker,
		source:    *src,
		fps:       fps,
		lastFrame: make(map[int]int),
	}
}

// Update avança os frames dos sprites colocados no atlas animado.
func (a *AnimatedAtlas) Update(time float64) {
	for slot, rect := range a.picker.AnimatedTextures.Placements() {
		entry, ok := a.picker.AtlasMapping[slot]
		if !ok || entry.Animated == nil || len(entry.Animated.Frames) == 0 {
			continue
		}
		frames := entry.Animated.Frames
		idx := int(time*a.fps) % len(frames)
		if prev, seen := a.lastFrame[slot]; seen && prev == idx {
			continue
		}
		a.lastFrame[slot] = idx

		src, err := a.picker.StaticRect(frames[idx])
		if err != nil {
			continue
		}
		crop := rl.ImageFromImage(a.source, rl.NewRectangle(src[0], src[1], src[2], src[3]))
		pixels := rl.LoadImageColors(&crop)
		rl.UpdateTextureRec(a.Texture, rl.NewRectangle(rect[0], rect[1], rect[2], rect[3]), pixels)
		rl.UnloadImage(&crop)
	}
}

// Unload libera a textura e a imagem fonte.
func (a *AnimatedAtlas) Unload() {
	rl.UnloadTexture(a.Texture)
	rl.UnloadImage(&a.source)
}
