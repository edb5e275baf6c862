package itineraries

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"triply/internal/audit"
	"triply/internal/shared/database"
	"triply/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []*audit.Event
}

func (p *capturePublisher) Publish(_ context.Context, e *audit.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func newTestService(t *testing.T) (Service, *fakeRepo, *capturePublisher, uuid.UUID) {
	t.Helper()
	repo := newFakeRepo()
	owner := uuid.New()
	repo.users[owner] = true
	pub := &capturePublisher{}
	return NewService(repo, audit.NewRecorder(pub, logger.Nop())), repo, pub, owner
}

func mustCreate(t *testing.T, svc Service, owner uuid.UUID, name string) *Itinerary {
	t.Helper()
	req := &ItinerarySchema{Name: name}
	req.Normalize()
	it, err := svc.Create(context.Background(), owner, req)
	require.NoError(t, err)
	return it
}

func TestService_ListKeepsListingOrder(t *testing.T) {
	svc, repo, _, owner := newTestService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, name := range []string{"Lisbon", "Porto", "Faro", "Braga"} {
		ids = append(ids, mustCreate(t, svc, owner, name).ID)
	}

	// earlier itineraries finish last
	delays := make(map[uuid.UUID]time.Duration, len(ids))
	for i, id := range ids {
		delays[id] = time.Duration(len(ids)-i) * 10 * time.Millisecond
	}
	repo.getFullHook = func(id uuid.UUID) { time.Sleep(delays[id]) }

	items, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, len(ids))
	for i, it := range items {
		assert.Equal(t, ids[i], it.ID)
		assert.NotNil(t, it.Media)
	}
}

func TestService_ListFilters(t *testing.T) {
	svc, repo, _, owner := newTestService(t)
	other := uuid.New()
	repo.users[other] = true

	mustCreate(t, svc, owner, "Lisbon by night")
	mustCreate(t, svc, owner, "Porto wine")
	mustCreate(t, svc, other, "LISBON food")

	items, err := svc.List(context.Background(), ListFilter{Name: "lisbon"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.List(context.Background(), ListFilter{Name: "lisbon", UserID: &owner})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lisbon by night", items[0].Name)

	simple, err := svc.ListSimplified(context.Background(), ListFilter{UserID: &other})
	require.NoError(t, err)
	require.Len(t, simple, 1)
	assert.Equal(t, "LISBON food", simple[0].Name)
}

func TestService_ListSkipsItinerariesDeletedMidway(t *testing.T) {
	svc, repo, _, owner := newTestService(t)
	first := mustCreate(t, svc, owner, "Lisbon")
	gone := mustCreate(t, svc, owner, "Porto")
	last := mustCreate(t, svc, owner, "Faro")

	var once sync.Once
	repo.getFullHook = func(uuid.UUID) {
		once.Do(func() { _ = repo.DeleteCascade(context.Background(), gone.ID) })
	}

	items, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, last.ID, items[1].ID)
}

func TestService_CreateDefaultsAndFullView(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	it := mustCreate(t, svc, owner, "  Lisbon  ")
	assert.Equal(t, "Lisbon", it.Name)
	assert.False(t, it.Popular)
	assert.Equal(t, owner, it.UserID)
	assert.Empty(t, it.Media)
	assert.Nil(t, it.Details)
}

func TestService_CreateForUnknownOwner(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), uuid.New(), &ItinerarySchema{Name: "Lisbon"})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestService_Update(t *testing.T) {
	svc, _, _, owner := newTestService(t)
	it := mustCreate(t, svc, owner, "Lisbon")

	popular := true
	updated, err := svc.Update(context.Background(), it.ID, &UpdateItinerarySchema{Popular: &popular})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", updated.Name)
	assert.True(t, updated.Popular)

	_, err = svc.Update(context.Background(), uuid.New(), &UpdateItinerarySchema{Popular: &popular})
	assert.ErrorIs(t, err, ErrItineraryNotFound)
}

func TestService_DeleteCascades(t *testing.T) {
	svc, repo, pub, owner := newTestService(t)
	ctx := context.Background()
	it := mustCreate(t, svc, owner, "Lisbon")

	d, err := svc.CreateDetails(ctx, &DetailsSchema{ItineraryID: it.ID.String(), Description: "City walk"})
	require.NoError(t, err)
	_, err = svc.CreateOptional(ctx, &OptionalSchema{DetailID: d.ID.String(), Title: "Tram ride"})
	require.NoError(t, err)
	_, err = svc.CreateMedia(ctx, &MediaSchema{URL: "https://img.example.com/a.jpg", ItineraryID: it.ID.String()})
	require.NoError(t, err)

	full, err := svc.Get(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, full.Details)
	assert.Len(t, full.Details.Optional, 1)
	assert.Len(t, full.Media, 1)

	require.NoError(t, svc.Delete(ctx, it.ID))
	assert.Empty(t, repo.itineraries)
	assert.Empty(t, repo.details)
	assert.Empty(t, repo.optionals)
	assert.Empty(t, repo.media)

	require.Len(t, pub.events, 1)
	assert.Equal(t, audit.EventItineraryDeleted, pub.events[0].Type)
	assert.Equal(t, it.ID.String(), pub.events[0].Subject)
	assert.Equal(t, owner.String(), pub.events[0].UserID)

	assert.ErrorIs(t, svc.Delete(ctx, it.ID), ErrItineraryNotFound)
}

type conflictRepo struct {
	*fakeRepo
}

func (conflictRepo) DeleteCascade(context.Context, uuid.UUID) error {
	return errors.Join(database.ErrForeignKey, errors.New("still referenced"))
}

func TestService_DeleteConflict(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	repo.users[owner] = true
	svc := NewService(conflictRepo{repo}, nil)
	it := mustCreate(t, svc, owner, "Lisbon")

	err := svc.Delete(context.Background(), it.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Details(t *testing.T) {
	svc, _, _, owner := newTestService(t)
	ctx := context.Background()
	it := mustCreate(t, svc, owner, "Lisbon")

	_, err := svc.ListDetails(ctx, it.ID)
	assert.ErrorIs(t, err, ErrDetailsNotFound)

	_, err = svc.CreateDetails(ctx, &DetailsSchema{ItineraryID: uuid.NewString(), Description: "City walk"})
	assert.ErrorIs(t, err, ErrParentNotFound)

	cost := 49.5
	d, err := svc.CreateDetails(ctx, &DetailsSchema{ItineraryID: it.ID.String(), Description: "City walk", CostPerPerson: &cost})
	require.NoError(t, err)
	assert.Equal(t, 49.5, *d.CostPerPerson)

	_, err = svc.CreateDetails(ctx, &DetailsSchema{ItineraryID: it.ID.String(), Description: "Again"})
	assert.ErrorIs(t, err, ErrDetailsExist)

	security := "Keep an eye on pockets"
	updated, err := svc.UpdateDetails(ctx, it.ID, &UpdateDetailsSchema{Additional: &AdditionalSchema{Security: &security}})
	require.NoError(t, err)
	assert.Equal(t, "City walk", updated.Description)
	require.NotNil(t, updated.Additional)
	assert.Equal(t, security, *updated.Additional.Security)

	_, err = svc.CreateOptional(ctx, &OptionalSchema{DetailID: d.ID.String(), Title: "Tram ride"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteDetails(ctx, it.ID), ErrConflict)

	_, err = svc.UpdateDetails(ctx, uuid.New(), &UpdateDetailsSchema{})
	assert.ErrorIs(t, err, ErrDetailsNotFound)
}

func TestService_OptionalAndMedia(t *testing.T) {
	svc, _, _, owner := newTestService(t)
	ctx := context.Background()
	it := mustCreate(t, svc, owner, "Lisbon")
	d, err := svc.CreateDetails(ctx, &DetailsSchema{ItineraryID: it.ID.String(), Description: "City walk"})
	require.NoError(t, err)

	_, err = svc.CreateOptional(ctx, &OptionalSchema{DetailID: uuid.NewString(), Title: "Tram ride"})
	assert.ErrorIs(t, err, ErrParentNotFound)

	o, err := svc.CreateOptional(ctx, &OptionalSchema{DetailID: d.ID.String(), Title: "Tram ride"})
	require.NoError(t, err)

	price := 12.0
	o, err = svc.UpdateOptional(ctx, o.ID, &UpdateOptionalSchema{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Tram ride", o.Title)
	assert.Equal(t, 12.0, *o.Price)

	items, err := svc.ListOptional(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.DeleteOptional(ctx, o.ID))
	assert.ErrorIs(t, svc.DeleteOptional(ctx, o.ID), ErrOptionalNotFound)
	_, err = svc.ListOptional(ctx, d.ID)
	assert.ErrorIs(t, err, ErrOptionalNotFound)

	_, err = svc.CreateMedia(ctx, &MediaSchema{URL: "https://img.example.com/a.jpg", ItineraryID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrParentNotFound)

	m, err := svc.CreateMedia(ctx, &MediaSchema{URL: "https://img.example.com/a.jpg", ItineraryID: it.ID.String()})
	require.NoError(t, err)

	url := "https://img.example.com/b.jpg"
	m, err = svc.UpdateMedia(ctx, m.ID, &UpdateMediaSchema{URL: &url})
	require.NoError(t, err)
	assert.Equal(t, url, m.URL)

	require.NoError(t, svc.DeleteMedia(ctx, m.ID))
	_, err = svc.ListMedia(ctx, it.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}
