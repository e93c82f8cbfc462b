package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
)

// Export writes all users and topics to path as indented JSON.
func (a *App) Export(ctx context.Context, path string) error {
	snap := a.store.Export()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	a.log.Info(ctx, "snapshot exported", "path", path, "users", len(snap.Users), "topics", len(snap.Topics))
	fmt.Fprintf(a.out, "Exported %d users and %d topics to %s\n", len(snap.Users), len(snap.Topics), path)
	return nil
}

// Import replaces all users and topics with the snapshot at path. The
// current session survives only if its user is part of the snapshot.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if err := a.store.Import(ctx, snap); err != nil {
		return err
	}
	if err := a.session.Restore(ctx, a.store); err != nil {
		return err
	}
	a.log.Info(ctx, "snapshot imported", "path", path, "users", len(snap.Users), "topics", len(snap.Topics))
	fmt.Fprintf(a.out, "Imported %d users and %d topics from %s\n", len(snap.Users), len(snap.Topics), path)
	return nil
}
