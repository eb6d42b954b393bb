// Package font synthesizes the xft font-specification strings handed to
// urxvt. A spec is a comma-separated fallback chain: each subsequent face
// supplies glyphs missing from the faces before it, so order is priority
// and is never rearranged here.
package font

import "strings"

// Role is the slot a font chain fills in the urxvt command line.
type Role int

const (
	RoleRegular Role = iota
	RoleBold
	RoleItalic
	RoleBoldItalic
)

// Face is one entry of a fallback chain.
type Face struct {
	Family    string
	Style     string
	Size      string
	Antialias bool
}

// Spec renders the face as an xft token. Size is substituted verbatim.
func (f Face) Spec() string {
	var b strings.Builder
	b.WriteString("xft:")
	b.WriteString(f.Family)
	b.WriteString(":style=")
	b.WriteString(f.Style)
	b.WriteString(":pixelsize=")
	b.WriteString(f.Size)
	if !f.Antialias {
		b.WriteString(":antialias=false")
	}
	return b.String()
}

// styleSet maps roles to the style attribute a family advertises through
// fontconfig. Bitmap and symbol families carry a single style for every
// role.
type styleSet struct {
	Regular, Bold, Italic, BoldItalic string
}

func (s styleSet) forRole(role Role) string {
	switch role {
	case RoleBold:
		return s.Bold
	case RoleItalic:
		return s.Italic
	case RoleBoldItalic:
		return s.BoldItalic
	default:
		return s.Regular
	}
}

// dejavuStyles matches the DejaVu families and most Nerd Font patches.
var dejavuStyles = styleSet{
	Regular:    "Book",
	Bold:       "Bold",
	Italic:     "Oblique",
	BoldItalic: "Bold Oblique",
}

var styleTable = map[string]styleSet{
	"Symbola":       {Regular: "Regular", Bold: "Regular", Italic: "Regular", BoldItalic: "Regular"},
	"Unifont Upper": {Regular: "Medium", Bold: "Medium", Italic: "Medium", BoldItalic: "Medium"},
	"Misc Fixed":    {Regular: "Medium", Bold: "Medium", Italic: "Medium", BoldItalic: "Medium"},
}

func stylesFor(family string) styleSet {
	if s, ok := styleTable[family]; ok {
		return s
	}
	return dejavuStyles
}

// Supplemental scalable faces appended after the primary one: symbols and
// emoji first, then wide-unicode coverage, with a proportional face as the
// last resort.
const (
	symbolFamily = "Symbola"
	wideFamily   = "Unifont Upper"
	sansFamily   = "DejaVu Sans"
)

// Chain describes the fonts available for one launch and renders the spec
// string for each role.
type Chain struct {
	Primary   string
	Bitmap    string
	Size      string
	FixedSize string
	Scalable  bool
}

// Spec renders the fallback chain for a role.
//
// In scalable mode the antialiased faces come first and the bitmap face is
// demoted to a glyph source of last resort before the proportional
// fallback. In fixed mode the bitmap face is authoritative and leads the
// chain, with the scalable faces appended for supplemental coverage only.
func (c Chain) Spec(role Role) string {
	bitmap := Face{
		Family:    c.Bitmap,
		Style:     stylesFor(c.Bitmap).forRole(role),
		Size:      c.FixedSize,
		Antialias: false,
	}
	scalable := []Face{
		c.face(c.Primary, role),
		c.face(symbolFamily, role),
		c.face(wideFamily, role),
	}
	sans := c.face(sansFamily, role)

	var faces []Face
	if c.Scalable {
		faces = append(scalable, bitmap, sans)
	} else {
		faces = append([]Face{bitmap}, append(scalable, sans)...)
	}

	specs := make([]string, len(faces))
	for i, f := range faces {
		specs[i] = f.Spec()
	}
	return strings.Join(specs, ",")
}

func (c Chain) face(family string, role Role) Face {
	return Face{
		Family:    family,
		Style:     stylesFor(family).forRole(role),
		Size:      c.Size,
		Antialias: true,
	}
}
