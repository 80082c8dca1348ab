package jsonstore

import (
	"context"
	"sync"

	"github.com/ascendtech/locacao-pro/internal/domain"
)

// MemoryStore implementação de BlobStore em memória, com as mesmas garantias
// de geração do armazenamento real. Usada nos testes e no modo de
// desenvolvimento (sem bucket configurado).
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	data       []byte
	generation int64
}

// NewMemoryStore constrói o armazenamento em memória.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]memoryBlob)}
}

// Download devolve o conteúdo e a geração; cria o blob vazio se não existir.
func (s *MemoryStore) Download(_ context.Context, name string) ([]byte, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[name]
	if !ok {
		b = memoryBlob{data: []byte("[]"), generation: 1}
		s.blobs[name] = b
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, b.generation, nil
}

// Upload grava condicionado à geração esperada.
func (s *MemoryStore) Upload(_ context.Context, name string, data []byte, expectGeneration int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[name]
	if !ok {
		if expectGeneration != 0 {
			return 0, domain.ErrVersionConflict
		}
		b = memoryBlob{generation: 0}
	}
	if ok && b.generation != expectGeneration {
		return 0, domain.ErrVersionConflict
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[name] = memoryBlob{data: stored, generation: b.generation + 1}
	return b.generation + 1, nil
}
