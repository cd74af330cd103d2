// Command migrate applies the SQL migrations in migrations/ using the atlas
// engine. Intended for local development and deploy hooks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"cape-tours-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + *dir + "?format=golang-migrate",
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
