package itineraries

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"triply/internal/shared/database"

	"github.com/google/uuid"
)

// fakeRepo keeps rows in maps and enforces the same references as the
// database constraints.
type fakeRepo struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]bool
	itineraries map[uuid.UUID]Itinerary
	details     map[uuid.UUID]Details
	optionals   map[uuid.UUID]Optional
	media       map[uuid.UUID]Media
	clock       time.Time

	// getFullHook runs before each full lookup
	getFullHook func(id uuid.UUID)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:       make(map[uuid.UUID]bool),
		itineraries: make(map[uuid.UUID]Itinerary),
		details:     make(map[uuid.UUID]Details),
		optionals:   make(map[uuid.UUID]Optional),
		media:       make(map[uuid.UUID]Media),
		clock:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp. Callers hold the lock.
func (f *fakeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]Itinerary, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Itinerary
	for _, it := range f.itineraries {
		if filter.Name != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.UserID != nil && it.UserID != *filter.UserID {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Itinerary, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	it, ok := f.itineraries[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &it, nil
}

func (f *fakeRepo) GetFull(_ context.Context, id uuid.UUID) (*Itinerary, error) {
	if f.getFullHook != nil {
		f.getFullHook(id)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	it, ok := f.itineraries[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	for _, m := range f.media {
		if m.ItineraryID == id {
			it.Media = append(it.Media, m)
		}
	}
	for _, d := range f.details {
		if d.ItineraryID != id {
			continue
		}
		for _, o := range f.optionals {
			if o.DetailID == d.ID {
				d.Optional = append(d.Optional, o)
			}
		}
		it.Details = &d
	}
	return &it, nil
}

func (f *fakeRepo) Create(_ context.Context, it *Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.users[it.UserID] {
		return database.ErrForeignKey
	}
	it.ID = uuid.New()
	it.CreatedAt = f.tick()
	it.UpdatedAt = it.CreatedAt
	f.itineraries[it.ID] = *it
	return nil
}

func (f *fakeRepo) Save(_ context.Context, it *Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.itineraries[it.ID]; !ok {
		return database.ErrNotFound
	}
	it.UpdatedAt = f.tick()
	f.itineraries[it.ID] = *it
	return nil
}

func (f *fakeRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.itineraries[id]; !ok {
		return database.ErrNotFound
	}
	for did, d := range f.details {
		if d.ItineraryID != id {
			continue
		}
		for oid, o := range f.optionals {
			if o.DetailID == did {
				delete(f.optionals, oid)
			}
		}
		delete(f.details, did)
	}
	for mid, m := range f.media {
		if m.ItineraryID == id {
			delete(f.media, mid)
		}
	}
	delete(f.itineraries, id)
	return nil
}

func (f *fakeRepo) ListDetails(_ context.Context, itineraryID uuid.UUID) ([]Details, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Details
	for _, d := range f.details {
		if d.ItineraryID == itineraryID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetDetails(_ context.Context, itineraryID uuid.UUID) (*Details, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, d := range f.details {
		if d.ItineraryID == itineraryID {
			return &d, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeRepo) CreateDetails(_ context.Context, d *Details) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.itineraries[d.ItineraryID]; !ok {
		return database.ErrForeignKey
	}
	for _, existing := range f.details {
		if existing.ItineraryID == d.ItineraryID {
			return database.ErrDuplicate
		}
	}
	d.ID = uuid.New()
	d.CreatedAt = f.tick()
	d.UpdatedAt = d.CreatedAt
	f.details[d.ID] = *d
	return nil
}

func (f *fakeRepo) SaveDetails(_ context.Context, d *Details) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.UpdatedAt = f.tick()
	f.details[d.ID] = *d
	return nil
}

func (f *fakeRepo) DeleteDetails(_ context.Context, itineraryID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, d := range f.details {
		if d.ItineraryID != itineraryID {
			continue
		}
		for _, o := range f.optionals {
			if o.DetailID == id {
				return database.ErrForeignKey
			}
		}
		delete(f.details, id)
		return nil
	}
	return database.ErrNotFound
}

func (f *fakeRepo) ListOptional(_ context.Context, detailID uuid.UUID) ([]Optional, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Optional
	for _, o := range f.optionals {
		if o.DetailID == detailID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetOptional(_ context.Context, id uuid.UUID) (*Optional, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	o, ok := f.optionals[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &o, nil
}

func (f *fakeRepo) CreateOptional(_ context.Context, o *Optional) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.details[o.DetailID]; !ok {
		return database.ErrForeignKey
	}
	o.ID = uuid.New()
	o.CreatedAt = f.tick()
	o.UpdatedAt = o.CreatedAt
	f.optionals[o.ID] = *o
	return nil
}

func (f *fakeRepo) SaveOptional(_ context.Context, o *Optional) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.UpdatedAt = f.tick()
	f.optionals[o.ID] = *o
	return nil
}

func (f *fakeRepo) DeleteOptional(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.optionals[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.optionals, id)
	return nil
}

func (f *fakeRepo) ListMedia(_ context.Context, itineraryID uuid.UUID) ([]Media, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Media
	for _, m := range f.media {
		if m.ItineraryID == itineraryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetMedia(_ context.Context, id uuid.UUID) (*Media, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	m, ok := f.media[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &m, nil
}

func (f *fakeRepo) CreateMedia(_ context.Context, m *Media) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.itineraries[m.ItineraryID]; !ok {
		return database.ErrForeignKey
	}
	m.ID = uuid.New()
	m.CreatedAt = f.tick()
	m.UpdatedAt = m.CreatedAt
	f.media[m.ID] = *m
	return nil
}

func (f *fakeRepo) SaveMedia(_ context.Context, m *Media) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.UpdatedAt = f.tick()
	f.media[m.ID] = *m
	return nil
}

func (f *fakeRepo) DeleteMedia(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.media[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.media, id)
	return nil
}
