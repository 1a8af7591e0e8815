package gui

import (
	"log/slog"
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/icons"

	. "modernc.org/tk9.0"
)

func applyAppIcon(photos *photoCache) {
	if img := photos.get(icons.App()); img != nil {
		App.IconPhoto(img)
	}
}

// photoCache keeps one Tk photo per icon resource. It is used from the Tk
// thread only.
type photoCache struct {
	photos map[string]*Img
}

func (c *photoCache) get(icon *icons.Icon) *Img {
	if icon == nil {
		return nil
	}
	if img, ok := c.photos[icon.Name()]; ok {
		return img
	}
	if c.photos == nil {
		c.photos = make(map[string]*Img)
	}
	img := loadPhoto(icon)
	c.photos[icon.Name()] = img
	return img
}

func loadPhoto(icon *icons.Icon) *Img {
	data, err := icons.ReadAll(icon)
	if err != nil {
		slog.Error("read icon", slog.String("icon", icon.Name()), slog.Any("error", err))
		return nil
	}
	if strings.HasSuffix(strings.ToLower(icon.Name()), ".svg") {
		return NewPhoto(Data(string(data)))
	}
	return NewPhoto(Data(data))
}

func actionsIcon() *icons.Icon { return icons.Configure() }

func commitIcon() *icons.Icon { return icons.Commit() }

func closeIcon() *icons.Icon { return icons.Close() }

func okIcon() *icons.Icon { return icons.OK() }

func syncIcon() *icons.Icon { return icons.Sync() }
