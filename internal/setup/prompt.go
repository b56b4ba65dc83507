package setup

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/imageio"
)

// Prompter asks the user for start-up values.
type Prompter interface {
	Rate(current int) (string, error)
	ImagePath() (string, error)
	Adapter(names []string, current int) (int, error)
	Error(msg string)
}

// Dialogs prompts with native dialogs.
type Dialogs struct{}

func (Dialogs) Rate(current int) (string, error) {
	text, err := zenity.Entry(
		fmt.Sprintf("Target FPS (%d-%d):", config.MinRate, config.MaxRate),
		zenity.Title(config.WindowTitle),
		zenity.EntryText(strconv.Itoa(current)),
	)
	return text, canceled(err)
}

func (Dialogs) ImagePath() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: imageio.Patterns,
		}},
	)
	return path, canceled(err)
}

func (Dialogs) Adapter(names []string, current int) (int, error) {
	opts := []zenity.Option{zenity.Title(config.WindowTitle)}
	if current >= 0 && current < len(names) {
		opts = append(opts, zenity.DefaultItems(names[current]))
	}
	name, err := zenity.List("Graphics adapter:", names, opts...)
	if err := canceled(err); err != nil {
		return 0, err
	}
	return AdapterIndex(name)
}

func (Dialogs) Error(msg string) {
	_ = zenity.Error(msg, zenity.Title(config.WindowTitle), zenity.ErrorIcon)
}

func canceled(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCanceled
	}
	return fmt.Errorf("dialog failed: %w", err)
}
