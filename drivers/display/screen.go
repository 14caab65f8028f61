package display

import (
	"github.com/naomigo/naomi/holly/pvr"
	"github.com/naomigo/naomi/holly/ta"
	"github.com/naomigo/naomi/holly/video"
)

// VideoPreset represents a predefined video configuration
type VideoPreset int

const (
	// LowRes is 320x240 at 16bpp
	LowRes VideoPreset = iota
	// HighRes is 640x480 at 32bpp
	HighRes
)

// Mode returns the video mode of the preset.
func (p VideoPreset) Mode() video.Mode {
	switch p {
	case HighRes:
		m := video.VGA
		m.Depth = video.BPP32
		return m
	default:
		return video.QVGA
	}
}

// Open brings up the Tile Accelerator on hw and returns a display for the
// preset.
func Open(hw ta.Hardware, cfg ta.Config, preset VideoPreset) (*Display, error) {
	mode := preset.Mode()
	d, err := ta.NewDriver(hw, cfg, mode)
	if err != nil {
		return nil, err
	}
	d.Init()
	return NewDisplay(d, pvr.NewRegisters(hw.PVR), mode), nil
}
