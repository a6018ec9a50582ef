package factory

import (
	"testing"

	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/layoutdata"
	"github.com/bogste/pixelfolio/shared/zones"
)

func TestSequenceConfig(t *testing.T) {
	if got := SequenceConfig(nil); got.GroundYPercent != cfg.Sequence.GroundYPercent {
		t.Errorf("expected defaults for nil layout, got ground %v", got.GroundYPercent)
	}

	layout := &layoutdata.Layout{
		GroundYPercent: 80,
		Zones:          []zones.Zone{{ID: "only", XPercent: 50, Kind: zones.Door}},
		Portal:         layoutdata.Portal{XPercent: 70, YPercent: 60},
	}
	got := SequenceConfig(layout)
	if got.GroundYPercent != 80 {
		t.Errorf("expected ground 80, got %v", got.GroundYPercent)
	}
	if len(got.Zones) != 1 || got.Zones[0].ID != "only" {
		t.Errorf("expected layout zones, got %v", got.Zones)
	}
	if got.PortalXPercent != 70 || got.PortalYPercent != 60 {
		t.Errorf("expected portal 70/60, got %v/%v", got.PortalXPercent, got.PortalYPercent)
	}
	if cfg.Sequence.GroundYPercent == 80 {
		t.Error("expected global config untouched")
	}
}
