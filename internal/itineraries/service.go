package itineraries

import (
	"context"
	"errors"
	"fmt"

	"triply/internal/audit"
	"triply/internal/shared/database"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrDetailsNotFound   = errors.New("itinerary details not found")
	ErrOptionalNotFound  = errors.New("itinerary optional not found")
	ErrMediaNotFound     = errors.New("media not found")
	ErrDetailsExist      = errors.New("itinerary details already exist")
	ErrParentNotFound    = errors.New("referenced parent does not exist")
	ErrConflict          = errors.New("related data still exists")
)

// max concurrent full-data lookups per listing
const listConcurrency = 8

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Itinerary, error)
	ListSimplified(ctx context.Context, filter ListFilter) ([]SimplifiedItinerary, error)
	Get(ctx context.Context, id uuid.UUID) (*Itinerary, error)
	Create(ctx context.Context, userID uuid.UUID, req *ItinerarySchema) (*Itinerary, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateItinerarySchema) (*Itinerary, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListDetails(ctx context.Context, itineraryID uuid.UUID) ([]Details, error)
	CreateDetails(ctx context.Context, req *DetailsSchema) (*Details, error)
	UpdateDetails(ctx context.Context, itineraryID uuid.UUID, req *UpdateDetailsSchema) (*Details, error)
	DeleteDetails(ctx context.Context, itineraryID uuid.UUID) error

	ListOptional(ctx context.Context, detailID uuid.UUID) ([]Optional, error)
	CreateOptional(ctx context.Context, req *OptionalSchema) (*Optional, error)
	UpdateOptional(ctx context.Context, id uuid.UUID, req *UpdateOptionalSchema) (*Optional, error)
	DeleteOptional(ctx context.Context, id uuid.UUID) error

	ListMedia(ctx context.Context, itineraryID uuid.UUID) ([]Media, error)
	CreateMedia(ctx context.Context, req *MediaSchema) (*Media, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, req *UpdateMediaSchema) (*Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	audit *audit.Recorder
}

func NewService(repo Repository, recorder *audit.Recorder) Service {
	return &service{
		repo:  repo,
		audit: recorder,
	}
}

// List returns every matching itinerary with its media, details and
// optional add-ons. The full views are loaded concurrently; the result keeps
// the listing order. Itineraries deleted between the two steps are skipped.
func (s *service) List(ctx context.Context, filter ListFilter) ([]*Itinerary, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}

	full := make([]*Itinerary, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i := range items {
		id := items[i].ID
		g.Go(func() error {
			it, err := s.repo.GetFull(gctx, id)
			if err != nil {
				if errors.Is(err, database.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("load itinerary %s: %w", id, err)
			}
			full[i] = ToFull(it)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := full[:0]
	for _, it := range full {
		if it != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *service) ListSimplified(ctx context.Context, filter ListFilter) ([]SimplifiedItinerary, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	return ToSimplified(items), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Itinerary, error) {
	it, err := s.repo.GetFull(ctx, id)
	if err != nil {
		return nil, kind(err, ErrItineraryNotFound)
	}
	return ToFull(it), nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req *ItinerarySchema) (*Itinerary, error) {
	it := &Itinerary{
		Name:    req.Name,
		Cover:   req.Cover,
		Popular: req.Popular != nil && *req.Popular,
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		// the owner vanished after the token was issued
		return nil, kind(err, nil)
	}
	return s.Get(ctx, it.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateItinerarySchema) (*Itinerary, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, kind(err, ErrItineraryNotFound)
	}

	req.Apply(it)
	if err := s.repo.Save(ctx, it); err != nil {
		return nil, kind(err, ErrItineraryNotFound)
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return kind(err, ErrItineraryNotFound)
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return kind(err, ErrItineraryNotFound)
	}

	s.audit.Record(ctx, audit.NewEvent(audit.EventItineraryDeleted, it.UserID.String()).
		WithSubject(id.String()))
	return nil
}

func (s *service) ListDetails(ctx context.Context, itineraryID uuid.UUID) ([]Details, error) {
	items, err := s.repo.ListDetails(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrDetailsNotFound
	}
	return items, nil
}

func (s *service) CreateDetails(ctx context.Context, req *DetailsSchema) (*Details, error) {
	d := req.toModel()
	if err := s.repo.CreateDetails(ctx, d); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrDetailsExist
		}
		return nil, kind(err, nil)
	}
	d.Optional = []Optional{}
	return d, nil
}

func (s *service) UpdateDetails(ctx context.Context, itineraryID uuid.UUID, req *UpdateDetailsSchema) (*Details, error) {
	d, err := s.repo.GetDetails(ctx, itineraryID)
	if err != nil {
		return nil, kind(err, ErrDetailsNotFound)
	}

	req.Apply(d)
	if err := s.repo.SaveDetails(ctx, d); err != nil {
		return nil, kind(err, ErrDetailsNotFound)
	}
	return d, nil
}

func (s *service) DeleteDetails(ctx context.Context, itineraryID uuid.UUID) error {
	return kind(s.repo.DeleteDetails(ctx, itineraryID), ErrDetailsNotFound)
}

func (s *service) ListOptional(ctx context.Context, detailID uuid.UUID) ([]Optional, error) {
	items, err := s.repo.ListOptional(ctx, detailID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOptionalNotFound
	}
	return items, nil
}

func (s *service) CreateOptional(ctx context.Context, req *OptionalSchema) (*Optional, error) {
	o := req.toModel()
	if err := s.repo.CreateOptional(ctx, o); err != nil {
		return nil, kind(err, nil)
	}
	return o, nil
}

func (s *service) UpdateOptional(ctx context.Context, id uuid.UUID, req *UpdateOptionalSchema) (*Optional, error) {
	o, err := s.repo.GetOptional(ctx, id)
	if err != nil {
		return nil, kind(err, ErrOptionalNotFound)
	}

	req.Apply(o)
	if err := s.repo.SaveOptional(ctx, o); err != nil {
		return nil, kind(err, ErrOptionalNotFound)
	}
	return o, nil
}

func (s *service) DeleteOptional(ctx context.Context, id uuid.UUID) error {
	return kind(s.repo.DeleteOptional(ctx, id), ErrOptionalNotFound)
}

func (s *service) ListMedia(ctx context.Context, itineraryID uuid.UUID) ([]Media, error) {
	items, err := s.repo.ListMedia(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrMediaNotFound
	}
	return items, nil
}

func (s *service) CreateMedia(ctx context.Context, req *MediaSchema) (*Media, error) {
	m := &Media{URL: req.URL, ItineraryID: uuid.MustParse(req.ItineraryID)}
	if err := s.repo.CreateMedia(ctx, m); err != nil {
		return nil, kind(err, nil)
	}
	return m, nil
}

func (s *service) UpdateMedia(ctx context.Context, id uuid.UUID, req *UpdateMediaSchema) (*Media, error) {
	m, err := s.repo.GetMedia(ctx, id)
	if err != nil {
		return nil, kind(err, ErrMediaNotFound)
	}

	req.Apply(m)
	if err := s.repo.SaveMedia(ctx, m); err != nil {
		return nil, kind(err, ErrMediaNotFound)
	}
	return m, nil
}

func (s *service) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	return kind(s.repo.DeleteMedia(ctx, id), ErrMediaNotFound)
}

// kind maps persistence kinds onto this package's errors. Writes that
// create rows pass a nil notFound: a foreign key violation there is a
// missing parent. Everywhere else it means children still reference the row.
func kind(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, database.ErrForeignKey) && notFound == nil:
		return fmt.Errorf("%w: %w", ErrParentNotFound, err)
	case errors.Is(err, database.ErrForeignKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
