package main

import (
	"flag"
	"os"

	"github.com/cellforge3d/cellforge"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 draws one from the clock")
	out := flag.String("o", "cell.glb", "output .glb path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	app := cellforge.NewAppBuilder().
		UseModule(
			cellforge.LoggingModule{Prefix: "cellforge", Debug: *debug},
			cellforge.SamplerModule{Seed: *seed},
			cellforge.SceneModule{},
			cellforge.MaterialsModule{},
			cellforge.MembraneModule{},
			cellforge.NucleusModule{},
			cellforge.RoughERModule{},
			cellforge.SmoothERModule{},
			cellforge.MitochondriaModule{},
			cellforge.GolgiModule{},
			cellforge.LysosomesModule{},
			cellforge.CentrosomeModule{},
			cellforge.FreeRibosomesModule{},
			cellforge.CytoskeletonModule{},
			cellforge.StagingModule{},
			cellforge.GlbExportModule{Path: *out},
		).
		Build()

	if err := app.Run(); err != nil {
		app.Logger().Errorf("%v", err)
		os.Exit(1)
	}
}
