package blockdata

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DyeColor representa uma das 16 cores de tintura do jogo.
type DyeColor struct {
	Name    string
	R, G, B uint8
}

// DyeColorList é a tabela completa das 16 tinturas.
// Usada para derivar a cor do pano de banners a partir do prefixo do nome
// do bloco (ex: "red_banner" → RED). Tabela estática, construída uma vez.
var DyeColorList = []DyeColor{
	{"white", 249, 255, 254},
	{"orange", 249, 128, 29},
	{"magenta", 199, 78, 189},
	{"light_blue", 58, 179, 218},
	{"yellow", 254, 216, 61},
	{"lime", 128, 199, 31},
	{"pink", 243, 139, 170},
	{"gray", 71, 79, 82},
	{"light_gray", 157, 157, 151},
	{"cyan", 22, 156, 156},
	{"purple", 137, 50, 184},
	{"blue", 60, 68, 170},
	{"brown", 131, 84, 50},
	{"green", 94, 124, 22},
	{"red", 176, 46, 38},
	{"black", 29, 29, 33},
}

var dyeByName map[string]rl.Color

func init() {
	dyeByName = make(map[string]rl.Color, len(DyeColorList))
	for _, d := range DyeColorList {
		dyeByName[d.Name] = rl.Color{R: d.R, G: d.G, B: d.B, A: 255}
	}
}

// DyeColorFor resolve a cor de tintura pelo nome exato ("lime", "red", ...).
func DyeColorFor(name string) (rl.Color, bool) {
	c, ok := dyeByName[name]
	return c, ok
}

// DyeColorFromBlockName deriva a cor pelo trecho do nome antes do primeiro
// underscore ("red_wall_banner" → red). Cores compostas como "light_blue"
// são testadas primeiro pelo prefixo de duas palavras.
func DyeColorFromBlockName(blockName string) (rl.Color, bool) {
	parts := strings.SplitN(blockName, "_", 3)
	if len(parts) >= 2 {
		if c, ok := dyeByName[parts[0]+"_"+parts[1]]; ok {
			return c, true
		}
	}
	if c, ok := dyeByName[parts[0]]; ok {
		return c, true
	}
	return rl.White, false
}
