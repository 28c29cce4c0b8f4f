package app

import (
	"log"

	"BlockVision/cliente/internal/client"
	"BlockVision/shared/blockdata"
)

// connectServer conecta ao servidor de preview em background e instala os
// callbacks. A estrutura recebida é entregue ao loop principal via pending.
func (a *App) connectServer() {
	a.netClient = client.NewNetworkClient(a.Config.ServerURL)

	a.netClient.OnStatus = func(msg string, ready bool) {
		a.StatusMessage = msg
		if !ready {
			log.Printf("[App] Servidor: %s", msg)
		}
	}

	a.netClient.OnStructure = func(s *blockdata.Structure) {
		a.pendingMu.Lock()
		a.pending = s
		a.pendingMu.Unlock()
	}

	if err := a.netClient.Connect(); err != nil {
		a.StatusMessage = "Falha ao conectar ao servidor"
		return
	}
	a.StatusMessage = "Conectado. Aguardando estrutura..."
}
