package main

import (
	"log"
	"os"

	"BlockVision/cliente/internal/app"
	"BlockVision/shared/config"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("[BlockVision] Iniciando visualizador...")

	cfg := config.Load()

	// Flags simples sobrepõem o config (útil em scripts de teste).
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--server":
			if i+1 < len(args) {
				cfg.ServerURL = args[i+1]
				i++
			}
		case "--assets":
			if i+1 < len(args) {
				cfg.AssetsDir = args[i+1]
				i++
			}
		case "--fullscreen":
			cfg.Fullscreen = true
		}
	}

	a := app.New(cfg)
	a.Run()

	log.Println("[BlockVision] Visualizador encerrado")
}
