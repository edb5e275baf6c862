package main

import (
	"context"
	"fmt"
	"log"

	"triply/api/routes"
	"triply/internal/itineraries"
	"triply/internal/shared/config"
	"triply/internal/shared/database"
	"triply/internal/shared/password"
	"triply/internal/users"
	"triply/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *database.DB
	hasher *password.Hasher
}

func main() {
	fmt.Println("Starting Triply database seeder...")
	_ = godotenv.Load()

	cfg := config.Load()
	appLogger := logger.New(cfg.LogLevel, true)

	db, err := database.InitDB(cfg, appLogger, routes.Models()...)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, hasher: password.NewHasher(password.DefaultCost)}
	ctx := context.Background()

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(ctx); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSeeding completed. Log in with any seeded email and password Triply123.")
}

// CleanDatabase empties every table, children first
func (s *Seeder) CleanDatabase(ctx context.Context) error {
	tables := []string{"optionals", "media", "details", "itineraries", "refresh_tokens", "users"}

	err := s.db.PostgreSQL.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// refresh tokens kept in redis would outlive their users
	if s.db.Redis != nil {
		iter := s.db.Redis.Scan(ctx, 0, "refresh_token:*", 100).Iterator()
		for iter.Next(ctx) {
			if err := s.db.Redis.Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan refresh tokens: %w", err)
		}
	}
	return nil
}

// SeedAll seeds users, then their itineraries
func (s *Seeder) SeedAll(ctx context.Context) error {
	userIDs, err := s.SeedUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedItineraries(ctx, userIDs); err != nil {
		return fmt.Errorf("failed to seed itineraries: %w", err)
	}
	return nil
}

// SeedUsers creates one admin and two regular users
func (s *Seeder) SeedUsers(ctx context.Context) (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding users...")

	hashed, err := s.hasher.Hash("Triply123")
	if err != nil {
		return nil, err
	}

	usersData := []struct {
		key      string
		fullname string
		email    string
		phone    string
		role     users.Role
	}{
		{"admin", "Admin User", "admin@triply.dev", "+351900000000", users.RoleAdmin},
		{"ana", "Ana Costa", "ana@triply.dev", "+351911111111", users.RoleUser},
		{"joao", "Joao Silva", "joao@triply.dev", "+351922222222", users.RoleUser},
	}

	userIDs := make(map[string]uuid.UUID, len(usersData))
	for _, u := range usersData {
		user := users.User{
			Fullname: u.fullname,
			Email:    u.email,
			Password: hashed,
			Role:     u.role,
			Phone:    u.phone,
		}
		if err := s.db.PostgreSQL.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.email, err)
		}
		userIDs[u.key] = user.ID
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}
	return userIDs, nil
}

type itinerarySeed struct {
	owner    string
	name     string
	cover    string
	popular  bool
	details  itineraries.Details
	optional []itineraries.Optional
	media    []string
}

// SeedItineraries creates itineraries with details, add-ons and media
func (s *Seeder) SeedItineraries(ctx context.Context, userIDs map[string]uuid.UUID) error {
	fmt.Println("  Seeding itineraries...")

	for _, seed := range itinerarySeeds() {
		err := s.db.PostgreSQL.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			cover := seed.cover
			it := itineraries.Itinerary{
				Name:    seed.name,
				Cover:   &cover,
				Popular: seed.popular,
				UserID:  userIDs[seed.owner],
			}
			if err := tx.Omit("Media", "Details").Create(&it).Error; err != nil {
				return err
			}

			details := seed.details
			details.ItineraryID = it.ID
			if err := tx.Omit("Optional").Create(&details).Error; err != nil {
				return err
			}

			for _, o := range seed.optional {
				o.DetailID = details.ID
				if err := tx.Create(&o).Error; err != nil {
					return err
				}
			}

			for _, url := range seed.media {
				if err := tx.Create(&itineraries.Media{URL: url, ItineraryID: it.ID}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to create itinerary %s: %w", seed.name, err)
		}
		fmt.Printf("    Created itinerary: %s\n", seed.name)
	}
	return nil
}

func itinerarySeeds() []itinerarySeed {
	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }

	return []itinerarySeed{
		{
			owner:   "ana",
			name:    "Lisbon Old Town Walk",
			cover:   "https://images.triply.dev/lisbon/cover.jpg",
			popular: true,
			details: itineraries.Details{
				Description:   "A half-day walk through Alfama and Baixa with a local guide.",
				Tour:          str("Alfama, Se Cathedral, Baixa, Praca do Comercio"),
				Duration:      num(4),
				Included:      str("Guide, pastel de nata tasting"),
				NotIncluded:   str("Public transport tickets"),
				MeetingPoint:  str("Rossio Square"),
				CostPerPerson: num(35),
				Additional: &itineraries.Additional{
					Security:      str("Watch for pickpockets on tram 28"),
					Accessibility: str("Steep cobbled streets"),
				},
			},
			optional: []itineraries.Optional{
				{Title: "Fado dinner", Price: num(45), Duration: num(2.5), Description: str("Dinner with live fado in Alfama")},
				{Title: "Tram 28 ride", Price: num(3)},
			},
			media: []string{
				"https://images.triply.dev/lisbon/alfama.jpg",
				"https://images.triply.dev/lisbon/tram.jpg",
			},
		},
		{
			owner: "ana",
			name:  "Porto Wine Cellars",
			cover: "https://images.triply.dev/porto/cover.jpg",
			details: itineraries.Details{
				Description:   "Visit three cellars in Vila Nova de Gaia with tastings.",
				Duration:      num(3),
				MeetingPoint:  str("Dom Luis I Bridge, lower deck"),
				CostPerPerson: num(55),
			},
			optional: []itineraries.Optional{
				{Title: "Rabelo boat cruise", Price: num(18), Duration: num(1)},
			},
			media: []string{"https://images.triply.dev/porto/cellar.jpg"},
		},
		{
			owner:   "joao",
			name:    "Algarve Coastal Trail",
			cover:   "https://images.triply.dev/algarve/cover.jpg",
			popular: true,
			details: itineraries.Details{
				Description:   "Seven Hanging Valleys trail from Praia da Marinha to Vale Centeanes.",
				Alert:         str("Bring water, little shade on the trail"),
				Duration:      num(5),
				Timetable:     str("Departures at 08:00 and 15:00"),
				CostPerPerson: num(25),
				Additional: &itineraries.Additional{
					Recommendations: str("Wear trail shoes"),
				},
			},
			media: []string{"https://images.triply.dev/algarve/benagil.jpg"},
		},
	}
}
