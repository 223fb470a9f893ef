package cellforge

import (
	"fmt"
	"os"

	"github.com/cellforge3d/cellforge/gltf"
)

// GlbExport holds the export destination. An empty Path builds the
// document without touching the filesystem, which dry runs rely on.
type GlbExport struct {
	Path string
}

// GlbExportModule writes the assembled scene to a binary glTF file.
type GlbExportModule struct {
	Path string
}

func (m GlbExportModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&GlbExport{Path: m.Path})
	cmd.UseSystem(System(glbExportSystem).InStage(Export))
}

func glbExportSystem(scene *Scene, exp *GlbExport, log *DefaultLogger) error {
	doc, bin, err := BuildGLTF(scene)
	if err != nil {
		return err
	}

	for _, gc := range scene.Summary() {
		log.Infof("%s: %d objects", gc.Name, gc.Count)
	}
	log.Infof("total: %d objects, %d bytes of geometry", scene.ObjectCount(), len(bin))

	if exp.Path == "" {
		log.Debugf("no output path set, skipping write")
		return nil
	}

	f, err := os.Create(exp.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exp.Path, err)
	}
	defer f.Close()

	if err := gltf.EncodeGLB(f, doc, bin); err != nil {
		return fmt.Errorf("writing %s: %w", exp.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", exp.Path, err)
	}

	log.Infof("wrote %s", exp.Path)
	return nil
}
