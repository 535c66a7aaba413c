// Package migrations holds the schema applied to a fresh database.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
)

//go:embed *.sql
var files embed.FS

// Apply runs every embedded script in file-name order. Scripts are idempotent.
func Apply(ctx context.Context, db *database.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		slog.Info("Migration applied", "file", name)
	}
	return nil
}
