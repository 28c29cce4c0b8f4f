package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"BlockVision/shared/blockdata"
	"BlockVision/shared/config"
	"BlockVision/shared/proto/bvnet"
	"BlockVision/shared/util"

	"github.com/gorilla/websocket"
)

// Server segura o estado compartilhado do servidor de preview.
type Server struct {
	hub     *Hub
	library *blockdata.Library

	structure *blockdata.Structure
	structMu  sync.RWMutex

	sourceFile string // arquivo .gob observado (vazio = biblioteca)
	sourceName string // nome na biblioteca
	lastMTime  int64
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("[Servidor] Iniciando servidor de preview...")

	cfg := config.Load()
	listen := flag.String("listen", cfg.ListenAddr, "endereço HTTP de escuta")
	file := flag.String("file", cfg.StructureFile, "arquivo .gob de estrutura a servir")
	libPath := flag.String("library", cfg.LibraryPath, "diretório da biblioteca de estruturas")
	name := flag.String("name", cfg.StructureName, "nome da estrutura na biblioteca")
	importAs := flag.String("import", "", "importa --file para a biblioteca com este nome e sai")
	flag.Parse()

	srv := &Server{
		hub:        newHub(),
		sourceFile: *file,
		sourceName: *name,
	}

	if *libPath != "" {
		lib, err := blockdata.OpenLibrary(*libPath)
		if err != nil {
			log.Printf("[Servidor] AVISO: biblioteca indisponível: %v", err)
		} else {
			srv.library = lib
		}
	}

	if *importAs != "" {
		if err := srv.importFile(*file, *importAs); err != nil {
			log.Fatalf("[Servidor] Falha na importação: %v", err)
		}
		log.Printf("[Servidor] Estrutura %q importada para a biblioteca", *importAs)
		return
	}

	if err := srv.loadStructure(); err != nil {
		log.Printf("[Servidor] AVISO: nenhuma estrutura carregada ainda: %v", err)
	}

	go srv.hub.run()
	go srv.watchSource()

	http.HandleFunc("/ws", srv.handleWS)
	http.HandleFunc("/", srv.handleStatus)

	log.Printf("[Servidor] Escutando em %s", *listen)
	if err := http.ListenAndServe(*listen, nil); err != nil {
		log.Fatalf("[Servidor] ERRO CRÍTICO: %v", err)
	}
}

// fileRecord é a forma GOB de um bloco em arquivos de estrutura avulsos.
type fileRecord struct {
	X, Y, Z    int32
	Name       string
	Properties map[string]string
}

// structureFile é o cabeçalho GOB de um arquivo de estrutura.
type structureFile struct {
	SizeX, SizeY, SizeZ int32
	MTime               int64
	Blocks              []fileRecord
}

// readStructureFile carrega um arquivo .gob de estrutura do disco.
func readStructureFile(path string) (*blockdata.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sf structureFile
	if err := gob.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("arquivo de estrutura corrompido: %w", err)
	}

	s := blockdata.NewStructure(util.NewBlockCoord(sf.SizeX, sf.SizeY, sf.SizeZ))
	s.MTime = sf.MTime
	for _, r := range sf.Blocks {
		s.Set(r.X, r.Y, r.Z, blockdata.NewBlockState(r.Name, r.Properties))
	}
	return s, nil
}

// importFile grava um arquivo .gob na biblioteca SQLite.
func (srv *Server) importFile(path, name string) error {
	if srv.library == nil {
		return fmt.Errorf("biblioteca não inicializada")
	}
	if path == "" {
		return fmt.Errorf("--file é obrigatório para importar")
	}
	s, err := readStructureFile(path)
	if err != nil {
		return err
	}
	return srv.library.SaveStructure(name, s)
}

// loadStructure carrega a estrutura da fonte configurada (arquivo tem
// prioridade sobre a biblioteca).
func (srv *Server) loadStructure() error {
	var s *blockdata.Structure
	var err error

	switch {
	case srv.sourceFile != "":
		s, err = readStructureFile(srv.sourceFile)
	case srv.library != nil && srv.sourceName != "":
		s, err = srv.library.LoadStructure(srv.sourceName)
	case srv.library != nil:
		// Sem nome: serve a primeira estrutura da biblioteca.
		var names []string
		names, err = srv.library.ListStructures()
		if err == nil && len(names) > 0 {
			srv.sourceName = names[0]
			s, err = srv.library.LoadStructure(names[0])
		} else if err == nil {
			err = fmt.Errorf("biblioteca vazia")
		}
	default:
		err = fmt.Errorf("nenhuma fonte de estrutura configurada")
	}
	if err != nil {
		return err
	}

	srv.structMu.Lock()
	srv.structure = s
	srv.lastMTime = s.MTime
	srv.structMu.Unlock()

	log.Printf("[Servidor] Estrutura carregada: %s, %d blocos (mtime %d)", s.Size, s.Count(), s.MTime)
	return nil
}

// watchSource observa o arquivo de origem e rebroadcasta quando muda.
func (srv *Server) watchSource() {
	if srv.sourceFile == "" {
		return
	}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		info, err := os.Stat(srv.sourceFile)
		if err != nil {
			continue
		}

		srv.structMu.RLock()
		last := srv.lastMTime
		srv.structMu.RUnlock()

		if info.ModTime().Unix() <= last {
			continue
		}

		s, err := readStructureFile(srv.sourceFile)
		if err != nil {
			log.Printf("[Servidor] AVISO: falha ao recarregar %s: %v", srv.sourceFile, err)
			continue
		}
		// O mtime do disco manda, para o cache do cliente invalidar.
		s.MTime = info.ModTime().Unix()

		srv.structMu.Lock()
		srv.structure = s
		srv.lastMTime = s.MTime
		srv.structMu.Unlock()

		log.Printf("[Servidor] Estrutura recarregada (%d blocos), rebroadcast para %d clientes",
			s.Count(), srv.hub.ClientCount())
		srv.hub.broadcast <- packStructure(s)
	}
}

// packStructure embrulha a estrutura num envelope binário pronto para envio.
func packStructure(s *blockdata.Structure) []byte {
	msg := bvnet.FromStructure(s)
	env := bvnet.Envelope{Type: bvnet.TypeStructure, Payload: msg.Marshal()}
	return env.Marshal()
}

func packStatus(message string, ready bool) []byte {
	status := bvnet.ServerStatus{Message: message, Ready: ready}
	env := bvnet.Envelope{Type: bvnet.TypeServerStatus, Payload: status.Marshal()}
	return env.Marshal()
}

// handleWS atende uma conexão do visualizador: status, estrutura atual, e
// depois pong para qualquer mensagem recebida.
func (srv *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Servidor] Falha no upgrade WebSocket: %v", err)
		return
	}

	srv.hub.register <- conn

	srv.structMu.RLock()
	s := srv.structure
	srv.structMu.RUnlock()

	if s == nil {
		srv.hub.WriteSafe(conn, websocket.BinaryMessage, packStatus("Aguardando estrutura...", false))
	} else {
		srv.hub.WriteSafe(conn, websocket.BinaryMessage, packStatus("Enviando estrutura", true))
		srv.hub.WriteSafe(conn, websocket.BinaryMessage, packStructure(s))
	}

	go func() {
		defer func() {
			srv.hub.unregister <- conn
		}()
		pong := bvnet.Envelope{Type: bvnet.TypePong}
		pongData := pong.Marshal()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			srv.hub.WriteSafe(conn, websocket.BinaryMessage, pongData)
		}
	}()
}

// handleStatus responde uma página de status simples.
func (srv *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	srv.structMu.RLock()
	s := srv.structure
	srv.structMu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "BlockVision preview server")
	fmt.Fprintf(w, "clientes: %d\n", srv.hub.ClientCount())
	if s != nil {
		fmt.Fprintf(w, "estrutura: %s, %d blocos, mtime %d\n", s.Size, s.Count(), s.MTime)
	} else {
		fmt.Fprintln(w, "estrutura: nenhuma carregada")
	}
}
