package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bogste/pixelfolio/shared/layoutdata"
)

// DefaultLayout is the embedded layout path.
const DefaultLayout = "layouts/portfolio.tmx"

var (
	//go:embed all:layouts
	assetFS embed.FS
)

// LoadLayout reads a layout. An empty path loads the embedded default; any
// other path is read from disk.
func LoadLayout(path string) (*layoutdata.Layout, error) {
	var (
		fsys fs.FS = assetFS
		name       = DefaultLayout
	)
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}
	l, err := layoutdata.Load(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", name, err)
	}
	return l, nil
}
