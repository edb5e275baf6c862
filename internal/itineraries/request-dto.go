package itineraries

import (
	"strings"

	"github.com/google/uuid"
)

// itinerary creation payload
type ItinerarySchema struct {
	Name    string  `json:"name" validate:"required,min=3" label:"name"`
	Cover   *string `json:"cover" validate:"omitempty,url" label:"cover"`
	Popular *bool   `json:"popular" label:"popular"`
}

func (s *ItinerarySchema) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	if s.Popular == nil {
		popular := false
		s.Popular = &popular
	}
}

type UpdateItinerarySchema struct {
	Name    *string `json:"name" validate:"omitempty,min=3" label:"name"`
	Cover   *string `json:"cover" validate:"omitempty,url" label:"cover"`
	Popular *bool   `json:"popular" label:"popular"`
}

func (s *UpdateItinerarySchema) Normalize() {
	if s.Name != nil {
		name := strings.TrimSpace(*s.Name)
		s.Name = &name
	}
}

// Apply copies the fields present in the payload onto it
func (s *UpdateItinerarySchema) Apply(it *Itinerary) {
	if s.Name != nil {
		it.Name = *s.Name
	}
	if s.Cover != nil {
		it.Cover = s.Cover
	}
	if s.Popular != nil {
		it.Popular = *s.Popular
	}
}

type AdditionalSchema struct {
	Security        *string `json:"security" label:"security"`
	Accessibility   *string `json:"accessibility" label:"accessibility"`
	Recommendations *string `json:"recommendations" label:"recommendations"`
}

func (s *AdditionalSchema) toModel() *Additional {
	if s == nil {
		return nil
	}
	return &Additional{
		Security:        s.Security,
		Accessibility:   s.Accessibility,
		Recommendations: s.Recommendations,
	}
}

// details creation payload
type DetailsSchema struct {
	ItineraryID   string            `json:"itinerary_id" validate:"required,uuid" label:"itinerary ID"`
	Description   string            `json:"description" validate:"required,min=3" label:"description"`
	Tour          *string           `json:"tour" label:"tour"`
	Alert         *string           `json:"alert" label:"alert"`
	Duration      *float64          `json:"duration" validate:"omitempty,gt=0" label:"duration"`
	Included      *string           `json:"included" label:"included"`
	Timetable     *string           `json:"timetable" label:"timetable"`
	NotIncluded   *string           `json:"notIncluded" label:"not included"`
	MeetingPoint  *string           `json:"meetingPoint" label:"meeting point"`
	CostPerPerson *float64          `json:"costPerPerson" label:"cost per person"`
	Additional    *AdditionalSchema `json:"additional" label:"additional"`
}

func (s *DetailsSchema) Normalize() {
	s.ItineraryID = strings.TrimSpace(s.ItineraryID)
	s.Description = strings.TrimSpace(s.Description)
}

func (s *DetailsSchema) toModel() *Details {
	return &Details{
		ItineraryID:   uuid.MustParse(s.ItineraryID),
		Description:   s.Description,
		Tour:          s.Tour,
		Alert:         s.Alert,
		Duration:      s.Duration,
		Included:      s.Included,
		Timetable:     s.Timetable,
		NotIncluded:   s.NotIncluded,
		MeetingPoint:  s.MeetingPoint,
		CostPerPerson: s.CostPerPerson,
		Additional:    s.Additional.toModel(),
	}
}

type UpdateDetailsSchema struct {
	Description   *string           `json:"description" validate:"omitempty,min=3" label:"description"`
	Tour          *string           `json:"tour" label:"tour"`
	Alert         *string           `json:"alert" label:"alert"`
	Duration      *float64          `json:"duration" validate:"omitempty,gt=0" label:"duration"`
	Included      *string           `json:"included" label:"included"`
	Timetable     *string           `json:"timetable" label:"timetable"`
	NotIncluded   *string           `json:"notIncluded" label:"not included"`
	MeetingPoint  *string           `json:"meetingPoint" label:"meeting point"`
	CostPerPerson *float64          `json:"costPerPerson" label:"cost per person"`
	Additional    *AdditionalSchema `json:"additional" label:"additional"`
}

// Apply copies the fields present in the payload onto d. A present
// additional object replaces the stored one.
func (s *UpdateDetailsSchema) Apply(d *Details) {
	if s.Description != nil {
		d.Description = strings.TrimSpace(*s.Description)
	}
	setString(&d.Tour, s.Tour)
	setString(&d.Alert, s.Alert)
	setString(&d.Included, s.Included)
	setString(&d.Timetable, s.Timetable)
	setString(&d.NotIncluded, s.NotIncluded)
	setString(&d.MeetingPoint, s.MeetingPoint)
	if s.Duration != nil {
		d.Duration = s.Duration
	}
	if s.CostPerPerson != nil {
		d.CostPerPerson = s.CostPerPerson
	}
	if s.Additional != nil {
		d.Additional = s.Additional.toModel()
	}
}

// optional add-on creation payload
type OptionalSchema struct {
	DetailID     string   `json:"detail_id" validate:"required,uuid" label:"detail ID"`
	Title        string   `json:"title" validate:"required,min=3" label:"title"`
	Price        *float64 `json:"price" label:"price"`
	Duration     *float64 `json:"duration" validate:"omitempty,gt=0" label:"duration"`
	Description  *string  `json:"description" label:"description"`
	Observations *string  `json:"observations" label:"observations"`
}

func (s *OptionalSchema) Normalize() {
	s.DetailID = strings.TrimSpace(s.DetailID)
	s.Title = strings.TrimSpace(s.Title)
}

func (s *OptionalSchema) toModel() *Optional {
	return &Optional{
		DetailID:     uuid.MustParse(s.DetailID),
		Title:        s.Title,
		Price:        s.Price,
		Duration:     s.Duration,
		Description:  s.Description,
		Observations: s.Observations,
	}
}

type UpdateOptionalSchema struct {
	Title        *string  `json:"title" validate:"omitempty,min=3" label:"title"`
	Price        *float64 `json:"price" label:"price"`
	Duration     *float64 `json:"duration" validate:"omitempty,gt=0" label:"duration"`
	Description  *string  `json:"description" label:"description"`
	Observations *string  `json:"observations" label:"observations"`
}

func (s *UpdateOptionalSchema) Apply(o *Optional) {
	if s.Title != nil {
		o.Title = strings.TrimSpace(*s.Title)
	}
	if s.Price != nil {
		o.Price = s.Price
	}
	if s.Duration != nil {
		o.Duration = s.Duration
	}
	setString(&o.Description, s.Description)
	setString(&o.Observations, s.Observations)
}

// media creation payload
type MediaSchema struct {
	URL         string `json:"url" validate:"required,url" label:"URL"`
	ItineraryID string `json:"itinerary_id" validate:"required,uuid" label:"itinerary ID"`
}

func (s *MediaSchema) Normalize() {
	s.URL = strings.TrimSpace(s.URL)
	s.ItineraryID = strings.TrimSpace(s.ItineraryID)
}

type UpdateMediaSchema struct {
	URL *string `json:"url" validate:"omitempty,url" label:"URL"`
}

func (s *UpdateMediaSchema) Apply(m *Media) {
	if s.URL != nil {
		m.URL = strings.TrimSpace(*s.URL)
	}
}

func setString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
