// Package memory keeps every repository port in process memory. It mirrors
// the DynamoDB repositories' conditional-write semantics so the use cases
// behave the same on either driver.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

// Store is the shared state behind the memory repositories. One mutex
// guards everything, which makes each repository call atomic.
type Store struct {
	mu sync.RWMutex

	occurrences map[int64]entities.Occurrence
	// provider id -> occurrence id holding the provider
	assignments map[int64]int64
	providers   map[int64]entities.Provider
	clients     map[int64]entities.Client
	accounts    map[int64]entities.Account
	positions   []entities.PositionSample
	payments    map[string]entities.BillingPayment

	counters map[string]int64
}

func NewStore() *Store {
	return &Store{
		occurrences: make(map[int64]entities.Occurrence),
		assignments: make(map[int64]int64),
		providers:   make(map[int64]entities.Provider),
		clients:     make(map[int64]entities.Client),
		accounts:    make(map[int64]entities.Account),
		payments:    make(map[string]entities.BillingPayment),
		counters:    make(map[string]int64),
	}
}

func (s *Store) next(name string) int64 {
	s.counters[name]++
	return s.counters[name]
}

// SeedClient registers a client and returns it with its id.
func (s *Store) SeedClient(c entities.Client) entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.next("clients")
	}
	if c.CriadoEm.IsZero() {
		c.CriadoEm = time.Now().UTC()
	}
	s.clients[c.ID] = c
	return c
}

// SeedProvider registers a provider outside the use case, for fixtures.
func (s *Store) SeedProvider(p entities.Provider) entities.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.next("providers")
	}
	if p.CriadoEm.IsZero() {
		p.CriadoEm = time.Now().UTC()
	}
	s.providers[p.ID] = p
	return p
}

// SeedAccount registers a login. Email is stored lower-cased.
func (s *Store) SeedAccount(a entities.Account) entities.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.next("accounts")
	}
	if a.CriadoEm.IsZero() {
		a.CriadoEm = time.Now().UTC()
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	s.accounts[a.ID] = a
	return a
}

func copyOccurrence(o entities.Occurrence) entities.Occurrence {
	cp := o
	if o.Fotos != nil {
		cp.Fotos = append([]entities.Photo(nil), o.Fotos...)
	}
	if o.DespesasDetalhadas != nil {
		cp.DespesasDetalhadas = append([]entities.ExpenseItem(nil), o.DespesasDetalhadas...)
	}
	return cp
}

func sortOccurrences(list []entities.Occurrence, byClosure bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if byClosure {
			switch {
			case a.EncerradaEm != nil && b.EncerradaEm != nil:
				if !a.EncerradaEm.Equal(*b.EncerradaEm) {
					return a.EncerradaEm.After(*b.EncerradaEm)
				}
			case a.EncerradaEm != nil:
				return true
			case b.EncerradaEm != nil:
				return false
			}
		}
		if !a.CriadoEm.Equal(b.CriadoEm) {
			return a.CriadoEm.After(b.CriadoEm)
		}
		return a.ID > b.ID
	})
}

func statusIn(s entities.OccurrenceStatus, statuses []entities.OccurrenceStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, want := range statuses {
		if s == want {
			return true
		}
	}
	return false
}
