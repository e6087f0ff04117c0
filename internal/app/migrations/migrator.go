package migrations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/logger"
)

// MigrationsCollection records the versions that have been applied
const MigrationsCollection = "schema_migrations"

// Migration is a versioned set of index definitions for one collection
type Migration struct {
	Version    string
	Collection string
	Indexes    []mongo.IndexModel
}

// Migrator manages database migrations
type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

// NewMigrator creates a migrator loaded with the application migrations
func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: DefaultMigrations(),
	}
}

// DefaultMigrations returns the index migrations of the users, courses and
// inquiries collections
func DefaultMigrations() []Migration {
	return []Migration{
		{
			Version:    "001",
			Collection: models.UsersCollection,
			Indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("users_email_unique").SetUnique(true),
				},
			},
		},
		{
			Version:    "002",
			Collection: models.CoursesCollection,
			Indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "class", Value: 1}, {Key: "batchType", Value: 1}}, Options: options.Index().SetName("courses_class_batch")},
				{Keys: bson.D{{Key: "subjects", Value: 1}}, Options: options.Index().SetName("courses_subjects")},
				{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "startDate", Value: 1}}, Options: options.Index().SetName("courses_active_start")},
			},
		},
		{
			Version:    "003",
			Collection: models.InquiriesCollection,
			Indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("inquiries_status_created")},
				{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetName("inquiries_phone")},
				{Keys: bson.D{{Key: "class", Value: 1}, {Key: "subject", Value: 1}}, Options: options.Index().SetName("inquiries_class_subject")},
			},
		},
	}
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	count, err := m.db.Collection(MigrationsCollection).CountDocuments(ctx, bson.M{"version": version})
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// recordMigration marks a migration as applied
func (m *Migrator) recordMigration(ctx context.Context, version string) error {
	_, err := m.db.Collection(MigrationsCollection).InsertOne(ctx, bson.M{
		"version":   version,
		"appliedAt": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Apply creates the indexes of a single migration unless it was already applied
func (m *Migrator) Apply(ctx context.Context, migration Migration) error {
	applied, err := m.isMigrationApplied(ctx, migration.Version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("version", migration.Version).Msg("Migration already applied, skipping")
		return nil
	}

	if len(migration.Indexes) > 0 {
		names, err := m.db.Collection(migration.Collection).Indexes().CreateMany(ctx, migration.Indexes)
		if err != nil {
			return fmt.Errorf("error creating indexes for %s: %w", migration.Collection, err)
		}
		logger.Info().Str("version", migration.Version).Strs("indexes", names).Msg("Indexes created")
	}

	if err := m.recordMigration(ctx, migration.Version); err != nil {
		return err
	}

	logger.Info().Str("version", migration.Version).Str("collection", migration.Collection).Msg("Migration successfully applied")
	return nil
}

// Migrate applies all pending migrations in version order
func (m *Migrator) Migrate(ctx context.Context) error {
	pending := make([]Migration, len(m.migrations))
	copy(pending, m.migrations)
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, migration := range pending {
		if err := m.Apply(ctx, migration); err != nil {
			return err
		}
	}
	return nil
}
