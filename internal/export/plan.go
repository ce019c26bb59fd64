package export

import "path/filepath"

// Format is the container a target is written in.
type Format int

const (
	PNG Format = iota
	ICO
)

func (f Format) String() string {
	if f == ICO {
		return "ico"
	}
	return "png"
}

// Target is one file of the icon set. A PNG target has exactly one size;
// an ICO target embeds one frame per size.
type Target struct {
	Label  string
	Path   string
	Format Format
	Sizes  []int
}

// Plan lists targets in write order.
type Plan []Target

// Favicon frame sizes, smallest first.
var FaviconSizes = []int{16, 32}

// DefaultPlan returns the icon set the web app ships.
func DefaultPlan(cfg Config) Plan {
	public := func(name string) string { return filepath.Join(cfg.PublicDir, name) }
	return Plan{
		{Label: "icon-512.png", Path: public("icon-512.png"), Format: PNG, Sizes: []int{512}},
		{Label: "icon-192.png", Path: public("icon-192.png"), Format: PNG, Sizes: []int{192}},
		{Label: "favicon.ico", Path: filepath.Join(cfg.AppDir, "favicon.ico"), Format: ICO, Sizes: FaviconSizes},
		{Label: "public/favicon.ico", Path: public("favicon.ico"), Format: ICO, Sizes: FaviconSizes},
		{Label: "apple-touch-icon.png", Path: public("apple-touch-icon.png"), Format: PNG, Sizes: []int{180}},
	}
}
