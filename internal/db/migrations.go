package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	embeddedmigrations "github.com/valegre/turno/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql and run in version order,
// each inside its own transaction. Applied versions are recorded in
// schema_migrations so restarts only run what is new.
var migrationNamePattern = regexp.MustCompile(`^(\d+)_.+\.sql$`)

type schemaMigration struct {
	Version string
	Name    string
	SQL     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	const bootstrapSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(bootstrapSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := collectEmbeddedMigrations()
	if err != nil {
		return err
	}

	applied := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&applied).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}
	appliedSet := make(map[string]struct{}, len(applied))
	for _, version := range applied {
		appliedSet[version] = struct{}{}
	}

	for _, migration := range pending {
		if _, done := appliedSet[migration.Version]; done {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func collectEmbeddedMigrations() ([]schemaMigration, error) {
	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	byVersion := make(map[string]string, len(entries))
	migrations := make([]schemaMigration, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		matches := migrationNamePattern.FindStringSubmatch(name)
		if entry.IsDir() || len(matches) != 2 {
			continue
		}
		version := matches[1]
		if previous, clash := byVersion[version]; clash {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, previous, name)
		}
		byVersion[version] = name

		rawSQL, err := fs.ReadFile(embeddedmigrations.Files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, schemaMigration{
			Version: version,
			Name:    name,
			SQL:     string(rawSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		ran := 0
		for _, part := range strings.Split(migration.SQL, ";") {
			statement := strings.TrimSpace(part)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", migration.Name, err)
			}
			ran++
		}
		if ran == 0 {
			return fmt.Errorf("migration %s has no statements", migration.Name)
		}

		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.Version, migration.Name,
		).Error
	})
}
