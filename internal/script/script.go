// Package script renders solved coordinates as click scripts.
package script

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/unicoord/internal/model"
)

const (
	// DefaultIndent is the indentation unit of the macro form.
	DefaultIndent = "\t"
	// DefaultIndexVar is the local index variable used by the macro form.
	DefaultIndexVar = "_ci"

	placeholderIndex = "RENAME_ME_INDEX"
	header           = "; Generated by unicoord"
)

// Line renders one coordinate as a standalone click.
func Line(c model.UniversalCoord) string {
	return fmt.Sprintf("click(vec(width.d()* %6.3f+height.d()* %6.3f,width.d()* %6.3f+height.d()* %6.3f))",
		c.W.X, c.H.X, c.W.Y, c.H.Y)
}

// RVec renders one coordinate as a call to the rvec macro.
func RVec(c model.UniversalCoord) string {
	return fmt.Sprintf("{rvec(%6.3f, %6.3f, %6.3f, %6.3f)}", c.W.X, c.H.X, c.W.Y, c.H.Y)
}

// Plain renders one click line per coordinate.
func Plain(coords []model.UniversalCoord) string {
	lines := make([]string, len(coords))
	for i, c := range coords {
		lines[i] = Line(c)
	}
	return strings.Join(lines, "\n")
}

// Macro renders a single click that selects the coordinate by index
// variable, falling back to vec(0.0,0.0) when no index matches.
func Macro(coords []model.UniversalCoord, indent, indexVar string) string {
	if indexVar == "" {
		indexVar = DefaultIndexVar
	}
	isDefault := indexVar == DefaultIndexVar
	setVar := indexVar
	if isDefault {
		setVar = placeholderIndex
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	fmt.Fprintf(&b, "; Use by setting %s and calling this script or jumping to the label\n", setVar)
	if isDefault {
		fmt.Fprintf(&b, ":global int %s\n", placeholderIndex)
		fmt.Fprintf(&b, ":local int %s\n", indexVar)
		fmt.Fprintf(&b, "%s = %s\n", indexVar, placeholderIndex)
	} else {
		fmt.Fprintf(&b, ":global int %s\n", indexVar)
	}
	b.WriteString("\n")
	b.WriteString("#rvec(wx,hx,wy,hy) vec(width.d()* {wx}+height.d()* {hx},width.d()* {wy}+height.d()* {hy})\n")
	b.WriteString("\n")
	b.WriteString("universal_click:\n")
	b.WriteString(indent + "click(\\\n")
	for i, c := range coords {
		fmt.Fprintf(&b, "%s%sif(%s == %2d, %s, \\\n", indent, indent, indexVar, i, RVec(c))
	}
	fmt.Fprintf(&b, "%s%s%svec(0.0,0.0)%s \\\n", indent, indent, indent, strings.Repeat(")", len(coords)))
	b.WriteString(indent + ")\n")
	return b.String()
}
