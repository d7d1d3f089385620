// Package worldmap handles the ISO-3 country resolution command
package worldmap

import (
	"fmt"

	"tamvonku/travel-stats/cmd/common"
	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/internal/geo"

	"github.com/spf13/cobra"
)

// Cmd represents the map command
var Cmd = &cobra.Command{
	Use:   "map",
	Short: "Resolve visited countries to ISO-3 codes",
	Long: `Resolve the country names of the accommodation data to ISO-3 codes for
map rendering. Names the builtin table and the overrides file cannot resolve
are excluded; extra mappings go in the geo overrides YAML file.`,
	Run: worldmapFunc,
}

func worldmapFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Map command called")

	filter, err := common.BuildFilter(root.SharedFlags.From, root.SharedFlags.To, root.SharedFlags.Countries, root.SharedFlags.Platforms)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}

	table := common.LoadStays(root.Loader, root.SharedFlags.AccommodationFile, filter, root.Log)
	if table.Empty() || !table.Schema.HasCountry {
		fmt.Println("No country data to resolve.")
		return
	}

	resolver := geo.NewResolver()
	store := geo.NewOverrideStore(root.Cfg.Geo.OverridesFile)
	overrides, err := store.LoadOverrides()
	if err != nil {
		root.Log.WithError(err).Warn("Failed to load country overrides, using builtin table only")
	} else {
		resolver.ApplyOverrides(overrides)
	}

	names := make([]string, 0, table.Len())
	for _, stay := range table.Stays {
		names = append(names, stay.Country)
	}

	codes := resolver.Resolve(names)
	if len(codes) == 0 {
		fmt.Println("No country data to resolve.")
		return
	}

	for _, code := range codes {
		fmt.Printf("%s  %s\n", code.ISO3, code.Country)
	}
}
