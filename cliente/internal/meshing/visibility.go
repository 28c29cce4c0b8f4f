package meshing

import (
	"regexp"

	"BlockVision/shared/blockdata"
	"BlockVision/shared/util"
)

// nameMatcher casa um nome de bloco por igualdade exata ou sufixo (regexp).
// Os dois modos convivem numa mesma lista ordenada.
type nameMatcher struct {
	exact  string
	suffix *regexp.Regexp
}

func exactMatcher(name string) nameMatcher {
	return nameMatcher{exact: name}
}

func suffixMatcher(pattern string) nameMatcher {
	return nameMatcher{suffix: regexp.MustCompile(pattern + "$")}
}

func (m nameMatcher) matches(name string) bool {
	if m.suffix != nil {
		return m.suffix.MatchString(name)
	}
	return m.exact == name
}

// halfTransparentMatchers lista os blocos meio-transparentes cujas faces
// compartilhadas entre vizinhos de mesmo nome são sempre puladas.
// Tabela estática, construída uma vez.
var halfTransparentMatchers = []nameMatcher{
	exactMatcher("glass"),
	exactMatcher("tinted_glass"),
	exactMatcher("ice"),
	exactMatcher("frosted_ice"),
	exactMatcher("slime_block"),
	exactMatcher("honey_block"),
	suffixMatcher("copper_grate"),
	suffixMatcher("stained_glass"),
}

// leavesMatcher é tratado em separado dos demais meio-transparentes.
var leavesMatcher = suffixMatcher("leaves")

const (
	powderSnowName = "powder_snow"
	barsName       = "iron_bars"
)

// rootsNames são os blocos de raiz cujas faces verticais entre si somem.
var rootsNames = map[string]bool{
	"mangrove_roots":       true,
	"muddy_mangrove_roots": true,
}

// ShouldSkipFace decide se a face compartilhada entre dois blocos adjacentes
// deve ser descartada (nenhum dos lados renderiza; a decisão é simétrica).
// As regras são avaliadas em ordem; os conjuntos de nomes são disjuntos.
func ShouldSkipFace(this, other *blockdata.BlockState, dir util.Direction) bool {
	if this == nil || other == nil {
		return false
	}

	thisName := this.BaseName()
	otherName := other.BaseName()

	// 1. Neve em pó contra neve em pó: nunca desenha a face interna.
	if thisName == powderSnowName && otherName == powderSnowName {
		return true
	}

	// 2. Grades conectadas: a face horizontal some se os dois lados
	// declaram conexão um com o outro (property booleana por direção).
	if thisName == barsName && otherName == barsName && dir.IsHorizontal() {
		if this.BoolProperty(dir.String()) && other.BoolProperty(dir.Opposite().String()) {
			return true
		}
	}

	// 3. Raízes empilhadas: faces verticais entre raízes iguais somem.
	if dir.IsVertical() && rootsNames[thisName] && thisName == otherName {
		return true
	}

	// 4. Meio-transparentes de mesmo nome (vidro, gelo, folhas...).
	if thisName == otherName {
		for _, m := range halfTransparentMatchers {
			if m.matches(thisName) {
				return true
			}
		}
		if leavesMatcher.matches(thisName) {
			return true
		}
	}

	return false
}
