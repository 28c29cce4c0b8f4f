package client

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"BlockVision/shared/blockdata"
	"BlockVision/shared/proto/bvnet"
)

// NetworkClient lida com a comunicação com o servidor de preview.
type NetworkClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex

	// Callbacks para o App
	OnStructure func(s *blockdata.Structure)
	OnStatus    func(msg string, ready bool)
}

func NewNetworkClient(url string) *NetworkClient {
	return &NetworkClient{url: url}
}

// Connect tenta conectar ao servidor com retries (o servidor pode ainda
// estar subindo quando o visualizador abre).
func (c *NetworkClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, c.url)
		c.conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Printf("[Network] ERRO CRÍTICO após %d tentativas: %v", maxRetries, err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

func (c *NetworkClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *NetworkClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.connected = false
}

func (c *NetworkClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		if c.conn != nil {
			c.conn.Close()
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão perdida: %v", err)
			break
		}

		var env bvnet.Envelope
		if err := env.Unmarshal(message); err != nil {
			log.Printf("[Network] Erro ao desempacotar envelope: %v", err)
			continue
		}

		c.handleMessage(&env)
	}
}

func (c *NetworkClient) handleMessage(env *bvnet.Envelope) {
	switch env.Type {
	case bvnet.TypeServerStatus:
		var status bvnet.ServerStatus
		if err := status.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] ServerStatus inválido: %v", err)
			return
		}
		if c.OnStatus != nil {
			c.OnStatus(status.Message, status.Ready)
		}
	case bvnet.TypeStructure:
		var msg bvnet.StructureMessage
		if err := msg.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] Estrutura inválida: %v", err)
			return
		}
		s := msg.ToStructure()
		log.Printf("[Network] Estrutura recebida: %s, %d blocos", s.Size, s.Count())
		if c.OnStructure != nil {
			c.OnStructure(s)
		}
	case bvnet.TypePong:
		// mantido vivo
	default:
		log.Printf("[Network] Envelope de tipo desconhecido: %d", env.Type)
	}
}
