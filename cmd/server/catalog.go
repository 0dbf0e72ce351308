package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-mechanics/internal/config"
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	redisclient "github.com/KirkDiggler/rpg-mechanics/internal/redis"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog"
)

var (
	importKind  string
	importStore string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage part catalogs",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON or TOML catalog file into a catalog store",
	Long: `Import replaces the stored catalog of every kind present in the file. Examples:

  catalog import catalog.toml --store sqlite
  catalog import powers.json --kind power --store redis`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().StringVar(&importKind, "kind", "", "only import this kind (power, technique or item)")
	catalogImportCmd.Flags().StringVar(&importStore, "store", config.CatalogSourceSQLite, "target store: redis or sqlite")
	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalogs, err := catalog.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	if importKind != "" {
		kind := mechanics.Kind(importKind)
		if !kind.IsValid() {
			return fmt.Errorf("unknown kind %q", importKind)
		}
		parts, ok := catalogs[kind]
		if !ok {
			return fmt.Errorf("%s has no %s parts", args[0], kind)
		}
		catalogs = map[mechanics.Kind][]mechanics.PartDefinition{kind: parts}
	}

	store, closeStore, err := openStore(cfg, importStore)
	if err != nil {
		return err
	}
	defer closeStore()

	kinds := make([]mechanics.Kind, 0, len(catalogs))
	for kind := range catalogs {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, kind := range kinds {
		out, err := store.PutParts(ctx, catalog.PutPartsInput{Kind: kind, Parts: catalogs[kind]})
		if err != nil {
			return fmt.Errorf("failed to import %s catalog: %w", kind, err)
		}
		fmt.Printf("Imported %d %s parts into %s\n", out.Count, kind, importStore)
	}

	return nil
}

func openStore(cfg config.Config, name string) (catalog.Store, func(), error) {
	switch name {
	case config.CatalogSourceSQLite:
		store, err := catalog.OpenSQLite(cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite catalog: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	case config.CatalogSourceRedis:
		client, err := redisclient.New(cfg.Redis.AddrList(), &redisclient.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		store, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis catalog: %w", err)
		}
		return store, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (expected redis or sqlite)", name)
	}
}
