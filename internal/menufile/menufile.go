package menufile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kwsdr/gridmenu/internal/menu"
	"github.com/kwsdr/gridmenu/internal/registry"
)

// Menu is a parsed menu definition file.
type Menu struct {
	Version  int     `yaml:"version"`
	Settings []Entry `yaml:"settings"`
}

// Entry is one row of the menu: a named setting or a separator.
type Entry struct {
	Name       string   `yaml:"name,omitempty"`
	Separator  bool     `yaml:"separator,omitempty"`
	Options    []string `yaml:"options,omitempty"`
	Current    int      `yaml:"current,omitempty"`
	LiveUpdate bool     `yaml:"live_update,omitempty"`
}

// Load reads and validates a menu definition file.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return Parse(data)
}

// Parse validates a menu definition from raw YAML.
func Parse(data []byte) (*Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if m.Version != 1 {
		return nil, fmt.Errorf("unsupported menu file version: %d (expected 1)", m.Version)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every entry against the registry invariants.
func (m *Menu) Validate() error {
	if len(m.Settings) == 0 {
		return fmt.Errorf("menu file defines no settings")
	}
	selectable := false
	for i, e := range m.Settings {
		if e.Separator {
			if e.Name != "" || len(e.Options) > 0 {
				return fmt.Errorf("entry %d: separator cannot carry a name or options", i)
			}
			continue
		}
		if e.Name == "" {
			return fmt.Errorf("entry %d: setting needs a name", i)
		}
		if len(e.Options) == 0 {
			return fmt.Errorf("entry %d (%s): setting needs at least one option", i, e.Name)
		}
		if e.Current < 0 || e.Current >= len(e.Options) {
			return fmt.Errorf("entry %d (%s): current index %d outside options [0, %d)",
				i, e.Name, e.Current, len(e.Options))
		}
		selectable = true
	}
	if !selectable {
		return fmt.Errorf("menu file defines only separators")
	}
	return nil
}

// Apply creates every entry on the controller. onChange supplies the change
// callback for each named setting; a nil factory creates settings that accept
// every change.
func (m *Menu) Apply(c *menu.Controller, onChange func(name string) registry.ChangeFunc) error {
	for i, e := range m.Settings {
		var err error
		if e.Separator {
			_, err = c.CreateSeparator()
		} else {
			var cb registry.ChangeFunc
			if onChange != nil {
				cb = onChange(e.Name)
			}
			_, err = c.Create(e.Name, e.Options, e.Current, e.LiveUpdate, cb)
		}
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// exampleMenu is written by WriteExample and shown in the docs. It mirrors
// the settings panel of a small SDR receiver.
const exampleMenu = `# gridmenu menu definition
#
# Each entry is either a named setting with its allowed values, or a
# separator row used to group settings visually.
#
# current:     index into options of the initial value
# live_update: push every scrolled value to the application immediately
#              instead of only on accept

version: 1
settings:
  - name: SAMPLERATE
    options: ["48000", "96000", "192000"]
    current: 1
  - name: IF
    options: ["0", "4500", "5000"]
    current: 1
    live_update: true
  - separator: true
  - name: OUT FILTER MAX
    options: ["2500", "3000", "3500"]
    current: 0
  - name: OUT FILTER TAPS
    options: ["50", "100"]
    current: 0
`

// Example returns the built-in example menu, used by the simulator when no
// menu file is given.
func Example() *Menu {
	m, err := Parse([]byte(exampleMenu))
	if err != nil {
		// The example is a compile-time constant; failing to parse it is
		// a programming error.
		panic(err)
	}
	return m
}

// WriteExample writes a commented example menu file. The write is atomic so
// a crash never leaves a half-written file behind.
func WriteExample(path string) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(exampleMenu), 0644); err != nil {
		return fmt.Errorf("failed to write temporary menu file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save menu file: %w", err)
	}
	return nil
}
