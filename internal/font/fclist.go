package font

import (
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// Styles usable for a terminal face.
var suitableStyles = map[string]bool{
	"regular": true,
	"normal":  true,
	"book":    true,
	"medium":  true,
	"bold":    true,
}

// Installed runs fc-list and returns the suitable fonts known to
// fontconfig. Purely informational: the launch path never checks whether
// a configured family actually exists.
func Installed(ctx context.Context) (map[string][]string, error) {
	out, err := exec.CommandContext(ctx, "fc-list").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run fc-list: %w", err)
	}
	return parseList(string(out)), nil
}

// parseList maps font names to their suitable styles. fc-list lines look
// like:
//
//	filename: name1,name2:style=style1,style2
//
// A font can advertise several names and several styles; styles may be
// aliases or internationalized names of the same weight.
func parseList(out string) map[string][]string {
	fonts := make(map[string][]string)
	for _, line := range strings.Split(out, "\n") {
		if line == "" || !strings.Contains(line, ": ") || !strings.Contains(line, ":style=") {
			continue
		}
		_, rest, _ := strings.Cut(line, ": ")
		names, _, _ := strings.Cut(rest, ":")
		_, styles, _ := strings.Cut(rest, ":style=")
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			for _, style := range strings.Split(styles, ",") {
				style = strings.TrimSpace(style)
				if suitableStyles[strings.ToLower(style)] {
					fonts[name] = append(fonts[name], style)
				}
			}
		}
	}
	for name, styles := range fonts {
		slices.Sort(styles)
		fonts[name] = slices.Compact(styles)
	}
	return fonts
}

// StyleFor picks a style for the named family from an Installed scan,
// preferring the bold weight when asked for.
func StyleFor(fonts map[string][]string, family string, bold bool) (string, error) {
	styles, ok := fonts[family]
	if !ok {
		return "", fmt.Errorf("there is no matching font for name %q", family)
	}
	if bold {
		for _, style := range styles {
			if strings.EqualFold(style, "bold") {
				return style, nil
			}
		}
	}
	for _, style := range styles {
		if suitableStyles[strings.ToLower(style)] {
			return style, nil
		}
	}
	return "", fmt.Errorf("there is no suitable style for font %q", family)
}
