package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do BlockVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Servidor de preview (usado pelo cliente)
	ServerURL string `json:"server_url"`

	// Servidor (usado pelo binário servidor)
	ListenAddr    string `json:"listen_addr"`
	LibraryPath   string `json:"library_path"`   // banco sqlite de estruturas
	StructureFile string `json:"structure_file"` // arquivo .gob avulso (opcional)
	StructureName string `json:"structure_name"` // nome da estrutura na biblioteca

	// Assets
	AssetsDir string `json:"assets_dir"`

	// Renderização
	MesherThreads int     `json:"mesher_threads"`
	FOV           float32 `json:"fov"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "BlockVision",
		Fullscreen:   false,
		TargetFPS:    60,

		ServerURL: "ws://127.0.0.1:8080/ws",

		ListenAddr:  ":8080",
		LibraryPath: "library.db",

		AssetsDir: "assets",

		MesherThreads: 4,
		FOV:           45.0,

		CameraSpeed:       20.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         4.0,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
