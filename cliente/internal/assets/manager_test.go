package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func testConfig() *SpecialBlocksConfig {
	return &SpecialBlocksConfig{
		SpecialBlocks: []SpecialBlockEntry{
			{Name: "chest", Slots: []int{0, 1, 2}},
			{Name: "banner", Slots: []int{7}},
		},
		NameMapping: map[string]string{
			"trapped_chest":   "chest",
			"red_banner":      "banner",
			"red_wall_banner": "banner",
		},
		GenericSlots: map[string]int{
			"stone": 3,
			"glass": 4,
		},
	}
}

func TestMapName(t *testing.T) {
	m := newManagerFromConfig(testConfig())

	tests := []struct {
		in   string
		want string
	}{
		{"trapped_chest", "chest"},
		{"red_wall_banner", "banner"},
		{"chest", "chest"},
		{"stone", "stone"},
		{"unknown_block", "unknown_block"},
	}

	for _, tt := range tests {
		if got := m.MapName(tt.in); got != tt.want {
			t.Errorf("MapName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetSpecialBlocksData(t *testing.T) {
	m := newManagerFromConfig(testConfig())

	slots := m.GetSpecialBlocksData("chest")
	if len(slots) != 3 || slots[0] != 0 || slots[1] != 1 || slots[2] != 2 {
		t.Errorf("slots de chest = %v, esperada a ordem [0 1 2]", slots)
	}

	// O mapeamento de nome é aplicado antes da consulta.
	if got := m.GetSpecialBlocksData("trapped_chest"); len(got) != 3 {
		t.Errorf("trapped_chest deveria herdar os slots de chest, veio %v", got)
	}

	// Bloco sem entrada segue o caminho genérico (nil).
	if got := m.GetSpecialBlocksData("stone"); got != nil {
		t.Errorf("bloco genérico deveria retornar nil, veio %v", got)
	}
}

func TestGenericSlot(t *testing.T) {
	m := newManagerFromConfig(testConfig())

	if slot, ok := m.GenericSlot("stone"); !ok || slot != 3 {
		t.Errorf("GenericSlot(stone) = %d, %v, want 3, true", slot, ok)
	}
	if _, ok := m.GenericSlot("chest"); ok {
		t.Errorf("bloco especial não tem slot genérico")
	}
}

func TestNewManagerFromFile(t *testing.T) {
	dir := t.TempDir()
	data := `{
		"specialBlocks": [{"name": "bell", "slots": [5]}],
		"genericSlots": {"dirt": 9}
	}`
	if err := os.WriteFile(filepath.Join(dir, "special_blocks.json"), []byte(data), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if slots := m.GetSpecialBlocksData("bell"); len(slots) != 1 || slots[0] != 5 {
		t.Errorf("slots de bell = %v, want [5]", slots)
	}
	if slot, ok := m.GenericSlot("dirt"); !ok || slot != 9 {
		t.Errorf("GenericSlot(dirt) = %d, %v", slot, ok)
	}
}

func TestNewManagerMissingFile(t *testing.T) {
	if _, err := NewManager(t.TempDir()); err == nil {
		t.Errorf("diretório sem special_blocks.json deveria falhar")
	}
}

func TestNewManagerInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "special_blocks.json"), []byte("{broken"), 0o644)
	if _, err := NewManager(dir); err == nil {
		t.Errorf("JSON inválido deveria falhar")
	}
}

func TestNilManagerQueries(t *testing.T) {
	// O mesher roda em workers; um manager ausente não pode derrubá-los.
	var m *Manager

	if got := m.MapName("stone"); got != "stone" {
		t.Errorf("MapName em manager nil = %q, want o nome inalterado", got)
	}
	if data := m.GetSpecialBlocksData("chest"); data != nil {
		t.Errorf("GetSpecialBlocksData em manager nil = %v, want nil", data)
	}
	if _, ok := m.GenericSlot("stone"); ok {
		t.Errorf("GenericSlot em manager nil não deve responder slot")
	}
}
