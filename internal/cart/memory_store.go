package cart

import (
	"math"
	"sync"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/match"
)

// MemoryStore implements Store with in-memory, insertion-ordered storage.
// State lives as long as the process; there is no persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AddOrIncrement(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Quantity: 1,
	})
}

func (s *MemoryStore) RemoveOne(query string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if match.Score(s.lines[i].Title, query) == 0 {
			continue
		}
		title := s.lines[i].Title
		if s.lines[i].Quantity > 1 {
			s.lines[i].Quantity--
		} else {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		return title, true
	}
	return "", false
}

func (s *MemoryStore) Summary() ([]domain.CartLine, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return lines, math.Round(total*100) / 100
}
