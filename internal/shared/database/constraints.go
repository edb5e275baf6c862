package database

import (
	"fmt"

	"gorm.io/gorm"
)

type constraint struct {
	name  string
	table string
	def   string
}

// Models are migrated without gorm's relationship constraints, so the
// foreign keys and checks are declared here. Children of an itinerary are
// not cascaded at the database level; the itinerary delete removes them
// explicitly and a lingering reference surfaces as ErrForeignKey.
var constraints = []constraint{
	{"fk_itineraries_user", "itineraries", "FOREIGN KEY (user_id) REFERENCES users(id)"},
	{"fk_details_itinerary", "details", "FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)"},
	{"fk_optionals_detail", "optionals", "FOREIGN KEY (detail_id) REFERENCES details(id)"},
	{"fk_media_itinerary", "media", "FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)"},
	{"fk_refresh_tokens_user", "refresh_tokens", "FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE"},
	{"chk_users_role", "users", "CHECK (role IN ('admin', 'user'))"},
}

// MigrateConstraints adds the constraints that do not exist yet.
func MigrateConstraints(db *gorm.DB) error {
	for _, c := range constraints {
		if !db.Migrator().HasTable(c.table) {
			continue
		}
		err := db.Exec(fmt.Sprintf(`
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s ADD CONSTRAINT %s %s;
				END IF;
			END $$;
		`, c.name, c.table, c.name, c.def)).Error
		if err != nil {
			return fmt.Errorf("constraint %s: %w", c.name, err)
		}
	}
	return nil
}
