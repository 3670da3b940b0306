package theme

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorbabel/color"
)

// Palette represents a set of colors and their associated 'roles' (e.g. color0, color1, etc.).
type Palette map[int]color.Color

// Theme represents a set of named colors and options ready for templating.
type Theme map[string]interface{}

type byDarkness []color.Color

func (cs byDarkness) Len() int { return len(cs) }
func (cs byDarkness) Less(i, j int) bool {
	return cs[i].Lab().L() < cs[j].Lab().L()
}
func (cs byDarkness) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }

//**exported functions**//

// Delegate assigns roles to a list of colors. The list is assumed to be
// ordered by prevalence; the darker half takes the low roles, the
// lighter half the high ones.
func Delegate(cs []color.Color) (Palette, error) {
	if len(cs) < 2 {
		return nil, fmt.Errorf("need at least 2 colors to build a theme, got %d", len(cs))
	}

	p := make(Palette)

	// group colors into darks and lights
	sorted := make([]color.Color, len(cs))
	copy(sorted, cs)
	sort.Sort(byDarkness(sorted))
	d := sorted[:len(sorted)/2]
	l := sorted[len(sorted)/2:]

	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p, nil
}

// Create creates a new theme based on a provided palette and other options
func Create(p Palette, opts map[string]interface{}) Theme {
	t := make(Theme)

	var keys []int
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		t["color"+strconv.Itoa(k)] = p[k].Hex()
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, keys)

	return t
}

// Render executes the pongo2 template at tplPath with the theme as its
// context.
func Render(t Theme, tplPath string) (string, error) {
	tpl, e := pongo2.FromFile(tplPath)
	if e != nil {
		return "", e
	}

	o, e := tpl.Execute(pongo2.Context(t))
	if e != nil {
		return "", e
	}

	return o, nil
}

// Save writes a theme to a JSON file.
func Save(t Theme, path string) error {
	b, e := json.MarshalIndent(t, "", "  ")
	if e != nil {
		return e
	}

	return ioutil.WriteFile(path, b, 0644)
}

// Load reads a theme back from a JSON file.
func Load(path string) (Theme, error) {
	b, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, e
	}

	t := make(Theme)
	if e := json.Unmarshal(b, &t); e != nil {
		return nil, e
	}

	return t, nil
}

//**helper functions**//

func setDefaults(t Theme, keys []int) {
	if len(keys) == 0 {
		return
	}

	if _, ok := t["background"]; !ok {
		t["background"] = t["color"+strconv.Itoa(keys[0])]
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color"+strconv.Itoa(keys[len(keys)-1])]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}
}
