package itineraries

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Itinerary struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Cover     *string   `json:"cover"`
	Popular   bool      `json:"popular" gorm:"not null;default:false"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Media   []Media  `json:"media" gorm:"foreignKey:ItineraryID"`
	Details *Details `json:"details" gorm:"foreignKey:ItineraryID"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

func (i *Itinerary) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Details holds the descriptive data of an itinerary. An itinerary has at
// most one.
type Details struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ItineraryID   uuid.UUID   `json:"itinerary_id" gorm:"type:uuid;not null;uniqueIndex"`
	Description   string      `json:"description" gorm:"not null"`
	Tour          *string     `json:"tour"`
	Alert         *string     `json:"alert"`
	Duration      *float64    `json:"duration"`
	Included      *string     `json:"included"`
	Timetable     *string     `json:"timetable"`
	NotIncluded   *string     `json:"notIncluded"`
	MeetingPoint  *string     `json:"meetingPoint"`
	CostPerPerson *float64    `json:"costPerPerson"`
	Additional    *Additional `json:"additional" gorm:"type:jsonb"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Optional []Optional `json:"optional" gorm:"foreignKey:DetailID"`
}

func (Details) TableName() string {
	return "details"
}

func (d *Details) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Additional is stored as a jsonb document on the details row
type Additional struct {
	Security        *string `json:"security,omitempty"`
	Accessibility   *string `json:"accessibility,omitempty"`
	Recommendations *string `json:"recommendations,omitempty"`
}

func (a Additional) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Additional) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*a = Additional{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("additional: unsupported column type")
	}
}

// Optional is a paid add-on offered with an itinerary's details
type Optional struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DetailID     uuid.UUID `json:"detail_id" gorm:"type:uuid;not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Price        *float64  `json:"price"`
	Duration     *float64  `json:"duration"`
	Description  *string   `json:"description"`
	Observations *string   `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Optional) TableName() string {
	return "optionals"
}

func (o *Optional) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type Media struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	URL         string    `json:"url" gorm:"not null"`
	ItineraryID uuid.UUID `json:"itinerary_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}

func (m *Media) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Models lists the tables of this package in migration order
func Models() []any {
	return []any{&Itinerary{}, &Details{}, &Optional{}, &Media{}}
}
