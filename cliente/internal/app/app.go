package app

import (
	"log"
	"runtime"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVision/cliente/internal/assets"
	"BlockVision/cliente/internal/camera"
	"BlockVision/cliente/internal/client"
	"BlockVision/cliente/internal/meshing"
	"BlockVision/cliente/internal/render"
	"BlockVision/shared/blockdata"
	"BlockVision/shared/config"
	"BlockVision/shared/util"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // aguardando a primeira estrutura
	StateViewing                 // visualizando a estrutura
)

// App é a aplicação principal do visualizador.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.Controller

	netClient   *client.NetworkClient
	models      *assets.Manager
	picker      *assets.MaterialPicker
	scene       *render.Scene
	animAtlas   *render.AnimatedAtlas
	mesher      *meshing.StructureMesher
	resultStore *meshing.ResultStore

	// Estrutura atual e a pendente (chega pela thread de rede).
	structure *blockdata.Structure
	pending   *blockdata.Structure
	pendingMu sync.Mutex

	// Seções com blocos animados, re-enfileiradas periodicamente.
	animatedOrigins map[util.BlockCoord]bool

	SelectedCoord *util.BlockCoord

	frameCount    int
	StatusMessage string
	ShowDebugInfo bool
	ShowGrid      bool
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:          cfg,
		State:           StateLoading,
		StatusMessage:   "Conectando ao servidor...",
		ShowDebugInfo:   cfg.ShowDebugInfo,
		ShowGrid:        cfg.ShowGrid,
		animatedOrigins: make(map[util.BlockCoord]bool),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	a.Cam = camera.New()

	log.Println("[BlockVision] Janela inicializada com sucesso")
	log.Printf("[BlockVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	models, err := assets.NewManager(a.Config.AssetsDir)
	if err != nil {
		log.Printf("[App] ERRO: model manager não carregado: %v", err)
		rl.CloseWindow()
		return
	}
	a.models = models

	picker, atlas, animAtlas, err := render.LoadAtlas(a.Config.AssetsDir)
	if err != nil {
		log.Printf("[App] ERRO: atlas não carregado: %v", err)
		rl.CloseWindow()
		return
	}
	a.picker = picker
	a.animAtlas = animAtlas
	a.scene = render.NewScene(picker, atlas, animAtlas)
	a.resultStore = meshing.NewResultStore()

	workers := a.Config.MesherThreads
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Printf("[App] Iniciando Mesher com %d workers (CPU Cores: %d)", workers, runtime.NumCPU())
	a.mesher = meshing.NewStructureMesher(workers, a.models, a.picker, a.resultStore)

	go a.connectServer()

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	a.swapPendingStructure()
	a.updateInput()

	dt := rl.GetFrameTime()
	if a.State == StateViewing {
		a.Cam.HandleInput(dt)
	}
	a.Cam.Update(dt)

	if a.animAtlas != nil {
		a.animAtlas.Update(rl.GetTime())
	}

	// Seções com blocos animados são re-meshadas periodicamente (o
	// pending set do mesher absorve repetições).
	if a.structure != nil && a.frameCount%6 == 0 {
		for origin := range a.animatedOrigins {
			a.mesher.Enqueue(meshing.Request{
				Origin:    origin,
				Structure: a.structure,
				MTime:     a.structure.MTime,
				Time:      rl.GetTime(),
			})
		}
	}

	a.processMesherResults()
}

// swapPendingStructure adota a estrutura recebida pela rede e dispara o
// rebuild completo da cena.
func (a *App) swapPendingStructure() {
	a.pendingMu.Lock()
	s := a.pending
	a.pending = nil
	a.pendingMu.Unlock()

	if s == nil {
		return
	}

	a.structure = s
	a.scene.Clear()
	a.resultStore.Clear()
	a.animatedOrigins = make(map[util.BlockCoord]bool)
	a.Cam.FitStructure(s.Size)
	a.State = StateViewing
	a.SelectedCoord = nil

	now := rl.GetTime()
	for _, origin := range meshing.SectionOrigins(s) {
		a.mesher.Enqueue(meshing.Request{
			Origin:    origin,
			Structure: s,
			MTime:     s.MTime,
			Time:      now,
		})
	}
	log.Printf("[App] Rebuild disparado: estrutura %s, %d blocos", s.Size, s.Count())
}

// processMesherResults consome resultados da fila e sobe para a GPU, com
// orçamento de tempo por frame para não causar stutter.
func (a *App) processMesherResults() {
	timeBudget := 0.004
	if a.State == StateLoading {
		timeBudget = 0.5
	}
	startTime := rl.GetTime()

	for {
		if rl.GetTime()-startTime > timeBudget {
			return
		}
		select {
		case res := <-a.mesher.Results():
			// Resultados de uma estrutura antiga são descartados.
			if a.structure == nil || res.MTime != a.structure.MTime {
				continue
			}
			a.scene.UploadResult(res)
			if res.Animated {
				a.animatedOrigins[res.Origin] = true
			}
		default:
			return
		}
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.mesher != nil {
		a.mesher.Stop()
	}
	if a.netClient != nil {
		a.netClient.Close()
	}
	if a.scene != nil {
		a.scene.Unload()
	}
	if a.animAtlas != nil {
		a.animAtlas.Unload()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[BlockVision] Erro ao salvar configurações: %v", err)
	}
}
