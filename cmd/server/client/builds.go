package client

import (
	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/handlers/mechanics/v1alpha1"
	"github.com/KirkDiggler/rpg-mechanics/internal/orchestrators/mechanics"
)

var listKind string

var saveBuildCmd = &cobra.Command{
	Use:   "save-build [build.json]",
	Short: "Save a power, technique or item build",
	Long: `Save a build; the server recomputes its cost from the current catalog. A build without
an id is created, otherwise the stored build is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var build entities.Build
		if err := readInput(args[0], &build); err != nil {
			return err
		}
		return call[mechanics.SaveBuildOutput](v1alpha1.MethodSaveBuild, &mechanics.SaveBuildInput{Build: &build})
	},
}

var getBuildCmd = &cobra.Command{
	Use:   "get-build [build-id]",
	Short: "Get a saved build",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call[mechanics.GetBuildOutput](v1alpha1.MethodGetBuild, &mechanics.GetBuildInput{BuildID: args[0]})
	},
}

var listBuildsCmd = &cobra.Command{
	Use:   "list-builds [owner-id]",
	Short: "List an owner's builds",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call[mechanics.ListBuildsOutput](v1alpha1.MethodListBuilds, &mechanics.ListBuildsInput{
			OwnerID: args[0],
			Kind:    entities.Kind(listKind),
		})
	},
}

var deleteBuildCmd = &cobra.Command{
	Use:   "delete-build [build-id]",
	Short: "Delete a saved build",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call[mechanics.DeleteBuildOutput](v1alpha1.MethodDeleteBuild, &mechanics.DeleteBuildInput{BuildID: args[0]})
	},
}

func init() {
	listBuildsCmd.Flags().StringVar(&listKind, "kind", "", "only list this kind (power, technique or item)")
}
