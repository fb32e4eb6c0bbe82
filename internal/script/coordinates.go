package script

import "github.com/verte-zerg/unicoord/internal/model"

// UniversalCoordinates is a solved coordinate set with its rendering options.
type UniversalCoordinates struct {
	Coords   []model.UniversalCoord
	Indent   string
	IndexVar string
}

// New returns coordinates with the default indent and index variable.
func New(coords []model.UniversalCoord) *UniversalCoordinates {
	return &UniversalCoordinates{
		Coords:   coords,
		Indent:   DefaultIndent,
		IndexVar: DefaultIndexVar,
	}
}

// Apply overrides rendering options with non-empty values from cfg.
func (u *UniversalCoordinates) Apply(cfg model.ScriptConfig) {
	if cfg.Indent != "" {
		u.Indent = cfg.Indent
	}
	if cfg.IndexVar != "" {
		u.IndexVar = cfg.IndexVar
	}
}

// AsScript renders one click line per coordinate.
func (u *UniversalCoordinates) AsScript() string {
	return Plain(u.Coords)
}

// AsScriptWithMacro renders the index-dispatched macro form.
func (u *UniversalCoordinates) AsScriptWithMacro() string {
	return Macro(u.Coords, u.Indent, u.IndexVar)
}

// Render picks the form selected by cfg after applying its options.
func (u *UniversalCoordinates) Render(cfg model.ScriptConfig) string {
	out := *u
	out.Apply(cfg)
	if cfg.Macro {
		return out.AsScriptWithMacro()
	}
	return out.AsScript()
}
