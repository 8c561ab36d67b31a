// Package shell renders the per-shell integration scripts printed by
// "jumpmap init". The binary cannot change its parent shell's directory, so
// each script wraps it in jump/setjump/deljump functions that cd into the
// printed path and registers alias completion backed by "jumpmap complete".
package shell

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"
)

//go:embed scripts/*.tmpl
var scripts embed.FS

// DefaultBin is the command the scripts call when no binary is given.
const DefaultBin = "jumpmap"

var supported = []string{"bash", "fish", "powershell", "zsh"}

var aliases = map[string]string{
	"pwsh": "powershell",
}

var plainWord = regexp.MustCompile(`^[A-Za-z0-9_./+@%-]+$`)

type scriptData struct {
	Bin   string
	Name  string
	Store string
}

// Supported returns the shells Script can render, sorted.
func Supported() []string {
	return slices.Clone(supported)
}

// Normalize maps a shell name (case-insensitive, "pwsh" accepted) to one of
// Supported. It returns false for unknown shells.
func Normalize(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	return name, slices.Contains(supported, name)
}

// Script returns the integration script for shell, calling bin.
func Script(shell, bin string) (string, error) {
	name, ok := Normalize(shell)
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(supported, ", "))
	}
	if bin == "" {
		bin = DefaultBin
	}

	return render(name+".tmpl", scriptData{
		Bin:  quote(name, bin),
		Name: bin,
	})
}

// Guide returns the markdown setup guide shown by "jumpmap init" without a
// shell argument.
func Guide(bin, store string) (string, error) {
	if bin == "" {
		bin = DefaultBin
	}
	return render("guide.md.tmpl", scriptData{Bin: bin, Name: bin, Store: store})
}

func render(name string, data scriptData) (string, error) {
	tmpl, err := template.ParseFS(scripts, "scripts/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// quote makes bin safe to splice into a script for shell. Plain command
// names and paths are left alone.
func quote(shell, bin string) string {
	if plainWord.MatchString(bin) {
		return bin
	}
	switch shell {
	case "powershell":
		return "'" + strings.ReplaceAll(bin, "'", "''") + "'"
	case "fish":
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(bin) + "'"
	default:
		return "'" + strings.ReplaceAll(bin, "'", `'\''`) + "'"
	}
}
