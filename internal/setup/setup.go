// Package setup turns flags, config file values and optional dialog answers
// into validated start-up settings for the viewer.
package setup

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/imageio"
)

var (
	ErrRateOutOfRange = errors.New("target rate out of range")
	ErrImageMissing   = errors.New("image not found")
	ErrUnknownAdapter = errors.New("unknown adapter")
	ErrCanceled       = errors.New("setup canceled")
)

// Adapters are the selectable graphics back ends, by index.
var Adapters = []string{"auto", "opengl", "directx", "metal"}

type Settings struct {
	Rate      int
	ImagePath string
	Adapter   int
	IconPath  string
	FontPath  string
	FontSize  float64
	Watch     bool
	LogLevel  string
}

// Defaults returns the built-in settings before config and flags apply.
func Defaults() Settings {
	return Settings{
		Rate:     config.DefaultRate,
		FontSize: config.DefaultFontSize,
		Watch:    true,
		LogLevel: "info",
	}
}

// Apply overlays values present in the config file.
func (s Settings) Apply(fc config.FileConfig) Settings {
	if fc.Rate != nil {
		s.Rate = *fc.Rate
	}
	if fc.Image != nil {
		s.ImagePath = *fc.Image
	}
	if fc.Adapter != nil {
		s.Adapter = *fc.Adapter
	}
	if fc.Icon != nil {
		s.IconPath = *fc.Icon
	}
	if fc.Font != nil {
		s.FontPath = *fc.Font
	}
	if fc.FontSize != nil {
		s.FontSize = *fc.FontSize
	}
	if fc.LogLevel != nil {
		s.LogLevel = *fc.LogLevel
	}
	if fc.Watch != nil {
		s.Watch = *fc.Watch
	}
	return s
}

// Validate checks the settings the render window cannot start without.
// The image path is cleaned in the returned copy.
func (s Settings) Validate() (Settings, error) {
	if s.Rate < config.MinRate || s.Rate > config.MaxRate {
		return s, fmt.Errorf("%w: %d not in [%d, %d]", ErrRateOutOfRange, s.Rate, config.MinRate, config.MaxRate)
	}
	s.ImagePath = imageio.CleanPath(s.ImagePath)
	if s.ImagePath == "" {
		return s, fmt.Errorf("%w: no image given", ErrImageMissing)
	}
	fi, err := os.Stat(s.ImagePath)
	if err != nil {
		return s, fmt.Errorf("%w: %s", ErrImageMissing, s.ImagePath)
	}
	if fi.IsDir() {
		return s, fmt.Errorf("%w: %s is a directory", ErrImageMissing, s.ImagePath)
	}
	if s.Adapter < 0 || s.Adapter >= len(Adapters) {
		return s, fmt.Errorf("%w: index %d", ErrUnknownAdapter, s.Adapter)
	}
	if s.FontSize <= 0 {
		s.FontSize = config.DefaultFontSize
	}
	return s, nil
}

// Resolve asks for missing values and validates the result. With full set,
// every value is asked for; otherwise only a missing image is. A nil
// prompter disables dialogs.
func Resolve(s Settings, full bool, p Prompter) (Settings, error) {
	if p != nil && full {
		text, err := p.Rate(s.Rate)
		if err != nil {
			return s, err
		}
		r, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return s, fmt.Errorf("%w: %q is not a number", ErrRateOutOfRange, text)
		}
		s.Rate = r
	}
	if p != nil && (full || imageio.CleanPath(s.ImagePath) == "") {
		path, err := p.ImagePath()
		if err != nil {
			return s, err
		}
		s.ImagePath = path
	}
	if p != nil && full {
		idx, err := p.Adapter(Adapters, s.Adapter)
		if err != nil {
			return s, err
		}
		s.Adapter = idx
	}
	return s.Validate()
}

// AdapterIndex looks up an adapter by name.
func AdapterIndex(name string) (int, error) {
	for i, a := range Adapters {
		if strings.EqualFold(a, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAdapter, name)
}
