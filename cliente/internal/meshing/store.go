package meshing

import (
	"sync"

	"BlockVision/shared/util"
)

// ResultStore guarda resultados de meshing por seção na RAM para evitar
// re-processamento quando a estrutura não mudou.
type ResultStore struct {
	mu      sync.RWMutex
	results map[util.BlockCoord]Result
}

// NewResultStore cria um novo repositório de resultados.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[util.BlockCoord]Result),
	}
}

// Get retorna um resultado se ele existir e for compatível com o MTime informado.
func (s *ResultStore) Get(origin util.BlockCoord, mtime int64) (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.results[origin]
	if ok && res.MTime == mtime {
		// Clone para que o consumidor não altere o cache
		return res.Clone(), true
	}
	return Result{}, false
}

// Store salva um resultado no repositório.
func (s *ResultStore) Store(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[res.Origin] = res.Clone()
}

// Clear limpa todo o cache de resultados.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[util.BlockCoord]Result)
}
