package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fcListSample = `/usr/share/fonts/X11/misc/9x15.pcf.gz: Misc Fixed:style=Medium
/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf: DejaVu Sans:style=Book
/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold,Negreta
/usr/share/fonts/truetype/symbola/Symbola.ttf: Symbola:style=Regular
/usr/share/fonts/opentype/alias/Alias.otf: Foo,Foo Wide:style=Medium
/usr/share/fonts/truetype/cursive/Cursive.ttf: Cursive:style=Italic
garbage line without separators
`

func TestParseList(t *testing.T) {
	t.Parallel()
	fonts := parseList(fcListSample)

	assert.Equal(t, []string{"Medium"}, fonts["Misc Fixed"])
	assert.Equal(t, []string{"Bold", "Book"}, fonts["DejaVu Sans"])
	assert.Equal(t, []string{"Regular"}, fonts["Symbola"])
	assert.Equal(t, []string{"Medium"}, fonts["Foo"], "every advertised name is indexed")
	assert.Equal(t, []string{"Medium"}, fonts["Foo Wide"])
	assert.NotContains(t, fonts, "Cursive", "fonts without a suitable style are skipped")
}

func TestStyleFor(t *testing.T) {
	t.Parallel()
	fonts := parseList(fcListSample)

	style, err := StyleFor(fonts, "Misc Fixed", false)
	require.NoError(t, err)
	assert.Equal(t, "Medium", style)

	style, err = StyleFor(fonts, "DejaVu Sans", true)
	require.NoError(t, err)
	assert.Equal(t, "Bold", style)

	_, err = StyleFor(fonts, "No Such Font", false)
	assert.Error(t, err)
}
