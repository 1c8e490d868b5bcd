package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prairiefare/partnermap/internal/adapters/boundary"
	"github.com/prairiefare/partnermap/internal/adapters/csvfile"
	"github.com/prairiefare/partnermap/internal/adapters/leaflet"
	"github.com/prairiefare/partnermap/internal/core/usecases"
	"github.com/prairiefare/partnermap/internal/pkg/config"
	"github.com/prairiefare/partnermap/internal/pkg/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "partnermap",
		Short:        "Generate a static partner-location map page",
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		partnersPath string
		boundaryPath string
		outPath      string
		epsg         int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Read partners and boundary, write the map HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over config file and environment.
			if cmd.Flags().Changed("partners") {
				cfg.Inputs.Partners = partnersPath
			}
			if cmd.Flags().Changed("boundary") {
				cfg.Inputs.Boundary = boundaryPath
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Path = outPath
			}
			if cmd.Flags().Changed("epsg") {
				cfg.Inputs.BoundaryEPSG = epsg
			}

			logging.Setup(cfg.Log.Level, cfg.Log.Format)

			renderer, err := leaflet.NewRenderer(cfg.Output.Path)
			if err != nil {
				return err
			}

			pipeline := usecases.NewPipeline(
				csvfile.New(cfg.Inputs.Partners),
				boundary.New(cfg.Inputs.Boundary, cfg.Inputs.BoundaryEPSG),
				renderer,
				usecases.NewEnrichService(),
				usecases.NewMaskService(),
				usecases.NewAssembleService(usecases.AssembleOptions{
					Title:           cfg.Output.Title,
					TileURL:         cfg.Map.TileURL,
					TileAttribution: cfg.Map.TileAttribution,
					MaskColor:       cfg.Map.MaskColor,
					MaskOpacity:     cfg.Map.MaskOpacity,
					OutlineColor:    cfg.Map.OutlineColor,
					OutlineWeight:   cfg.Map.OutlineWeight,
					BoundsPad:       cfg.Map.BoundsPad,
					MinZoom:         cfg.Map.MinZoom,
					MaxZoom:         cfg.Map.MaxZoom,
				}),
				cfg.Map.BufferMargin,
			)

			start := time.Now()
			if err := pipeline.Generate(cmd.Context()); err != nil {
				return err
			}
			slog.Info("map written", "path", cfg.Output.Path, "took", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&partnersPath, "partners", "", "path to the partner CSV file")
	cmd.Flags().StringVar(&boundaryPath, "boundary", "", "path to the boundary file (.shp, .geojson or .json)")
	cmd.Flags().StringVar(&outPath, "out", "", "path of the HTML page to write")
	cmd.Flags().IntVar(&epsg, "epsg", 0, "EPSG code of the boundary file coordinates")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the partnermap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("partnermap", version)
		},
	}
}
