// Package assets provides sprites, fonts and sounds to the game.
// Every lookup degrades to a placeholder: a missing asset never fails.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/swarm/internal/core"
)

// SpritesFile is the optional override file looked up in the asset directory.
const SpritesFile = "sprites.yaml"

// Sprite is the terminal image of an entity: the glyph it is drawn with.
type Sprite struct {
	Glyph       rune
	Color       core.Color // ColorDefault lets the game pick
	Placeholder bool       // No asset was found under the requested name
}

// Font controls how a text style is laid out in cells.
type Font struct {
	Name    string
	Spacing int  // Spaces inserted between letters
	Upper   bool // Render in upper case
}

// Render lays out text in this font.
func (f Font) Render(text string) string {
	if f.Upper {
		text = strings.ToUpper(text)
	}
	if f.Spacing <= 0 {
		return text
	}
	gap := strings.Repeat(" ", f.Spacing)
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, gap)
}

// SoundPlayer plays named sound effects.
type SoundPlayer interface {
	Play(name string) bool
}

// Options configure a Provider.
type Options struct {
	Dir    string      // Optional directory holding sprites.yaml
	Sound  SoundPlayer // Nil disables sound
	Logger *log.Logger
}

// Provider serves assets to the game. It is safe for concurrent use.
type Provider struct {
	sprites map[string]Sprite
	fonts   map[string]Font
	sound   SoundPlayer
	log     *log.Logger

	mu     sync.Mutex
	warned map[string]bool
}

var builtinSprites = map[string]Sprite{
	"player":      {Glyph: '█', Color: core.ColorBrightBlue},
	"enemy":       {Glyph: '█', Color: core.ColorDefault},
	"enemy_basic": {Glyph: '▓', Color: core.ColorRed},
	"enemy_fast":  {Glyph: '▲', Color: core.ColorOrange},
	"enemy_tank":  {Glyph: '●', Color: core.ColorPurple},
	"projectile":  {Glyph: '•', Color: core.ColorBrightYellow},
	"background":  {Glyph: '·', Color: core.ColorGray},
	"menu_bg":     {Glyph: '·', Color: core.ColorBlue},
}

var builtinFonts = map[string]Font{
	"title": {Name: "title", Spacing: 1, Upper: true},
	"main":  {Name: "main", Upper: true},
	"small": {Name: "small"},
}

// NewProvider creates a provider with the built-in sprites, overridden by
// Dir/sprites.yaml when present. A broken override file is logged and ignored.
func NewProvider(opts Options) *Provider {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Provider{
		sprites: make(map[string]Sprite, len(builtinSprites)),
		fonts:   builtinFonts,
		sound:   opts.Sound,
		log:     logger,
		warned:  make(map[string]bool),
	}
	for name, s := range builtinSprites {
		p.sprites[name] = s
	}

	if opts.Dir != "" {
		path := filepath.Join(opts.Dir, SpritesFile)
		overrides, err := loadSprites(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("sprite overrides not found, using built-in sprites", "path", path)
		case err != nil:
			logger.Warn("ignoring sprite overrides", "path", path, "err", err)
		default:
			for name, s := range overrides {
				p.sprites[name] = s
			}
			logger.Debug("loaded sprite overrides", "path", path, "count", len(overrides))
		}
	}
	return p
}

// Image returns the sprite registered under name, or a placeholder.
func (p *Provider) Image(name string) Sprite {
	if s, ok := p.sprites[name]; ok {
		return s
	}
	p.warnOnce("image", name)
	return Sprite{Glyph: '█', Placeholder: true}
}

// Font returns the named font, or the plain default.
func (p *Provider) Font(name string) Font {
	if f, ok := p.fonts[name]; ok {
		return f
	}
	p.warnOnce("font", name)
	return Font{Name: name}
}

// PlaySound plays a named effect. Unknown names and disabled audio are ignored.
func (p *Provider) PlaySound(name string) {
	if p.sound == nil {
		return
	}
	if !p.sound.Play(name) {
		p.warnOnce("sound", name)
	}
}

func (p *Provider) warnOnce(kind, name string) {
	key := kind + ":" + name
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.warned[key] {
		return
	}
	p.warned[key] = true
	p.log.Warn("asset not found, using placeholder", "kind", kind, "name", name)
}

// spriteEntry is the YAML form of a sprite override.
type spriteEntry struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

func loadSprites(path string) (map[string]Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]spriteEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("assets: failed to parse %s: %w", path, err)
	}

	sprites := make(map[string]Sprite, len(entries))
	var errs []error
	for name, e := range entries {
		runes := []rune(e.Glyph)
		if len(runes) != 1 {
			errs = append(errs, fmt.Errorf("sprite %q: glyph must be a single character, got %q", name, e.Glyph))
			continue
		}
		color := core.ColorDefault
		if e.Color != "" {
			c, ok := core.ParseColor(e.Color)
			if !ok {
				errs = append(errs, fmt.Errorf("sprite %q: unknown color %q", name, e.Color))
				continue
			}
			color = c
		}
		sprites[name] = Sprite{Glyph: runes[0], Color: color}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("assets: invalid %s: %w", path, errors.Join(errs...))
	}
	return sprites, nil
}
