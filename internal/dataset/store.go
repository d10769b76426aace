// Package dataset mantém em memória a tabela de vendas carregada
package dataset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

var ErrNotLoaded = errors.New("conjunto de vendas ainda não foi carregado")

// Snapshot é uma versão imutável da tabela de vendas
type Snapshot struct {
	Sales    []domain.Sale
	LoadedAt time.Time
	Source   string
	Version  int64
}

// Status resume o estado da última carga
type Status struct {
	Source        string     `json:"source"`
	Rows          int        `json:"rows"`
	Version       int64      `json:"version"`
	LoadedAt      *time.Time `json:"loaded_at,omitempty"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

type Store struct {
	repo    repository.SalesRepository
	current atomic.Pointer[Snapshot]
	now     func() time.Time

	// loadMu serializa as cargas; mu protege só o estado da última tentativa
	loadMu        sync.Mutex
	mu            sync.Mutex
	lastAttemptAt time.Time
	lastErr       error
}

func NewStore(repo repository.SalesRepository) *Store {
	return &Store{
		repo: repo,
		now:  time.Now,
	}
}

// Load lê a tabela completa e substitui o snapshot atual.
// Em caso de erro o snapshot anterior continua valendo.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	attemptAt := s.now()
	s.mu.Lock()
	s.lastAttemptAt = attemptAt
	s.mu.Unlock()

	sales, err := s.repo.LoadSales(ctx)
	if err != nil {
		s.setLastErr(err)
		return errors.Wrapf(err, "erro ao carregar vendas de %s", s.repo.Source())
	}

	var version int64 = 1
	if previous := s.current.Load(); previous != nil {
		version = previous.Version + 1
	}

	snapshot := &Snapshot{
		Sales:    sales,
		LoadedAt: attemptAt,
		Source:   s.repo.Source(),
		Version:  version,
	}
	s.current.Store(snapshot)
	s.setLastErr(nil)

	logrus.WithFields(logrus.Fields{
		"source":  snapshot.Source,
		"rows":    len(sales),
		"version": version,
	}).Info("Conjunto de vendas carregado")

	return nil
}

func (s *Store) setLastErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Snapshot retorna a tabela atual ou ErrNotLoaded
func (s *Store) Snapshot() (*Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return snapshot, nil
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{Source: s.repo.Source()}

	if snapshot := s.current.Load(); snapshot != nil {
		loadedAt := snapshot.LoadedAt
		status.Rows = len(snapshot.Sales)
		status.Version = snapshot.Version
		status.LoadedAt = &loadedAt
	}

	if !s.lastAttemptAt.IsZero() {
		attempt := s.lastAttemptAt
		status.LastAttemptAt = &attempt
	}

	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}

	return status
}
