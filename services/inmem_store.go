package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhajulhaq/ppm-backend/models"
)

// InMemoryRecordingStore adalah implementasi RecordingStore di memori,
// dipakai untuk test dan pengembangan tanpa database.
type InMemoryRecordingStore struct {
	mu    sync.RWMutex
	recs  map[uuid.UUID]models.Recording
	order []uuid.UUID // urutan insert; List mengembalikan kebalikannya

	// CreateErr, kalau diisi, membuat Create berikutnya gagal.
	CreateErr error
}

func NewInMemoryRecordingStore() *InMemoryRecordingStore {
	return &InMemoryRecordingStore{
		recs: make(map[uuid.UUID]models.Recording),
	}
}

func (s *InMemoryRecordingStore) Create(rec *models.Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	s.recs[rec.ID] = *rec
	s.order = append(s.order, rec.ID)
	return nil
}

func (s *InMemoryRecordingStore) FindByID(id uuid.UUID) (*models.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := rec
	return &found, nil
}

func (s *InMemoryRecordingStore) List(filter RecordingFilter) ([]models.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Recording
	for i := len(s.order) - 1; i >= 0; i-- {
		rec, ok := s.recs[s.order[i]]
		if !ok {
			continue
		}
		if filter.Kelas != "" && rec.Kelas != filter.Kelas {
			continue
		}
		if filter.Mangkulan != "" && rec.Mangkulan != filter.Mangkulan {
			continue
		}
		if filter.ActiveOnly && !rec.IsActive {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *InMemoryRecordingStore) ArchiveActive(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rec := range s.recs {
		if rec.IsActive {
			rec.IsActive = false
			rec.UpdatedAt = now
			s.recs[id] = rec
		}
	}
	return nil
}

func (s *InMemoryRecordingStore) Save(rec *models.Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recs[rec.ID]; !ok {
		return ErrNotFound
	}
	s.recs[rec.ID] = *rec
	return nil
}

func (s *InMemoryRecordingStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Transaction meniru rollback database: kalau fn gagal, isi store
// dikembalikan ke keadaan sebelum fn jalan.
func (s *InMemoryRecordingStore) Transaction(fn func(RecordingStore) error) error {
	s.mu.Lock()
	snapshot := make(map[uuid.UUID]models.Recording, len(s.recs))
	for id, rec := range s.recs {
		snapshot[id] = rec
	}
	orderSnapshot := append([]uuid.UUID(nil), s.order...)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.recs = snapshot
		s.order = orderSnapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
