package layoutdata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/bogste/pixelfolio/shared/sprite"
	"github.com/bogste/pixelfolio/shared/zones"
	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX file.
const (
	GroupZones    = "zones"
	GroupIcons    = "icons"
	GroupPortal   = "portal"
	GroupGround   = "ground"
	GroupSections = "sections"
)

// ErrNoZones is returned when a map has no zone objects.
var ErrNoZones = errors.New("layout has no zones")

// Load parses a TMX layout. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS for a layout on disk.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Width:    float64(m.Width * m.TileWidth),
		Height:   float64(m.Height * m.TileHeight),
		Sections: make(map[string]Section),
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}
	pctX := func(x float64) float64 { return x / l.Width * 100 }
	pctY := func(y float64) float64 { return y / l.Height * 100 }

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupZones:
			for _, o := range og.Objects {
				kind, ok := zones.ParseKind(o.Properties.GetString("kind"))
				if !ok {
					return nil, fmt.Errorf("zone %q: unknown kind %q", o.Name, o.Properties.GetString("kind"))
				}
				l.Zones = append(l.Zones, zones.Zone{
					ID:       o.Name,
					XPercent: pctX(o.X),
					Label:    o.Properties.GetString("label"),
					Kind:     kind,
				})
			}

		case GroupIcons:
			for _, o := range og.Objects {
				c, err := sprite.ParseHex(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("icon %q: %w", o.Name, err)
				}
				section := o.Properties.GetString("section")
				if section == "" {
					section = o.Name
				}
				l.Icons = append(l.Icons, Icon{
					ID:       o.Name,
					Label:    o.Properties.GetString("label"),
					Zone:     o.Properties.GetString("zone"),
					Section:  section,
					XPercent: pctX(o.X),
					YPercent: pctY(o.Y),
					Size:     o.Width,
					Rotation: o.Properties.GetFloat("rotation"),
					Color:    c,
				})
			}

		case GroupPortal:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				l.Portal = Portal{XPercent: pctX(o.X), YPercent: pctY(o.Y)}
			}

		case GroupSections:
			for _, o := range og.Objects {
				title := o.Properties.GetString("title")
				if title == "" {
					title = o.Name
				}
				l.Sections[o.Name] = Section{
					ID:    o.Name,
					Title: title,
					Body:  o.Properties.GetString("body"),
				}
			}

		case GroupGround:
			if len(og.Objects) > 0 {
				l.GroundYPercent = pctY(og.Objects[0].Y)
			}
		}
	}

	if len(l.Zones) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoZones)
	}

	// Icons draw back to front by id order in the file; keep left-to-right
	// for picking ties.
	sort.SliceStable(l.Icons, func(i, j int) bool {
		return l.Icons[i].XPercent < l.Icons[j].XPercent
	})

	return l, nil
}
