package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label     FontName = "label"
	LabelBold FontName = "label-bold"
	Mono      FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go fonts at the sizes the page uses.
func LoadDefaults() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Label, goregular.TTF, 14},
		{LabelBold, gobold.TTF, 14},
		{Mono, gomono.TTF, 12},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
