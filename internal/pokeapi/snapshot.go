package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Snapshot copies the pokemon and pokemon-species records for each name
// into dir, in the layout NewMirrorHandler serves. At most parallel names
// are fetched at once; the first failure stops the rest.
func Snapshot(ctx context.Context, c *Client, dir string, names []string, parallel int) error {
	for _, sub := range []string{"pokemon", "pokemon-species"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallel))
	for _, name := range names {
		g.Go(func() error {
			for _, sub := range []string{"pokemon", "pokemon-species"} {
				var raw json.RawMessage
				if err := c.getJSON(gctx, "/"+sub+"/"+name, &raw); err != nil {
					return fmt.Errorf("snapshot %s: %w", name, err)
				}
				var buf bytes.Buffer
				if err := json.Indent(&buf, raw, "", "  "); err != nil {
					return fmt.Errorf("snapshot %s: %w", name, err)
				}
				if err := os.WriteFile(filepath.Join(dir, sub, name+".json"), buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
