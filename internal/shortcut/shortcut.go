// Package shortcut reads Windows .lnk files. Parsing is done in Go with golnk,
// so it works on any OS that can read the file.
package shortcut

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	lnk "github.com/parsiya/golnk"
)

const Extension = ".lnk"

var ErrNoTarget = errors.New("shortcut has no target path")

// Info is what the launcher needs from a shortcut.
type Info struct {
	Path         string
	Target       string
	Arguments    string
	WorkingDir   string
	IconLocation string
}

func IsShortcut(p string) bool {
	return strings.HasSuffix(strings.ToLower(p), Extension)
}

func Resolve(p string) (Info, error) {
	f, err := lnk.File(p)
	if err != nil {
		return Info{Path: p}, fmt.Errorf("parse shortcut %s: %w", p, err)
	}

	info := Info{
		Path:         p,
		Target:       targetOf(p, f),
		Arguments:    f.StringData.CommandLineArguments,
		WorkingDir:   ExpandEnv(f.StringData.WorkingDir),
		IconLocation: ExpandEnv(f.StringData.IconLocation),
	}
	if info.Target == "" {
		return info, fmt.Errorf("%s: %w", p, ErrNoTarget)
	}
	return info, nil
}

func targetOf(linkPath string, f lnk.LnkFile) string {
	if base := f.LinkInfo.LocalBasePath; base != "" {
		return ExpandEnv(joinWindows(base, f.LinkInfo.CommonPathSuffix))
	}
	if name := ExpandEnv(f.StringData.NameString); isAbsolute(name) {
		return name
	}
	if rel := f.StringData.RelativePath; rel != "" {
		return ExpandEnv(joinWindows(dirOf(linkPath), rel))
	}
	return ""
}

// IconSource is the file an icon should be taken from: the icon location when
// the shortcut names one, the target otherwise.
func IconSource(info Info) (string, int) {
	if info.IconLocation != "" {
		if p, idx := SplitIconLocation(info.IconLocation); p != "" {
			return p, idx
		}
	}
	return info.Target, 0
}

// SplitIconLocation splits `C:\x\app.exe,3` into the path and the icon index.
// Quoted paths may contain commas.
func SplitIconLocation(loc string) (string, int) {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return "", 0
	}

	if strings.HasPrefix(loc, `"`) {
		if end := strings.Index(loc[1:], `"`); end != -1 {
			p := loc[1 : end+1]
			rest := strings.TrimSpace(loc[end+2:])
			if strings.HasPrefix(rest, ",") {
				idx, _ := strconv.Atoi(strings.TrimSpace(rest[1:]))
				return p, idx
			}
			return p, 0
		}
	}

	comma := strings.LastIndex(loc, ",")
	if comma == -1 {
		return loc, 0
	}

	p := strings.TrimSpace(loc[:comma])
	idx, err := strconv.Atoi(strings.TrimSpace(loc[comma+1:]))
	if err != nil {
		// not an index, the comma belongs to the path
		return loc, 0
	}
	return p, idx
}

var exeDecoration = regexp.MustCompile(`(?i)^(.+?)\.exe\b.*$`)

// DisplayName turns "Foo.exe - Shortcut.lnk" into "Foo".
func DisplayName(p string) string {
	name := baseName(p)
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, Extension) {
		name = name[:len(name)-len(Extension)]
	}
	if m := exeDecoration.FindStringSubmatch(name); len(m) > 1 {
		name = m[1]
	}
	return name
}

var windowsEnvVar = regexp.MustCompile(`%([A-Za-z0-9_()]+)%`)

// ExpandEnv expands %VAR% references the way the Windows shell does.
// Unknown variables are kept and '$' is an ordinary path character.
func ExpandEnv(s string) string {
	if s == "" {
		return s
	}
	s = windowsEnvVar.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := os.LookupEnv(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})
	return s
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i != -1 {
		return p[i+1:]
	}
	return p
}

func dirOf(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i != -1 {
		return p[:i]
	}
	return "."
}

func joinWindows(base, suffix string) string {
	if suffix == "" {
		return base
	}
	if strings.HasSuffix(base, `\`) || strings.HasSuffix(base, "/") ||
		strings.HasPrefix(suffix, `\`) || strings.HasPrefix(suffix, "/") {
		return base + suffix
	}
	sep := `\`
	if strings.Contains(base, "/") && !strings.Contains(base, `\`) {
		sep = "/"
	}
	return base + sep + suffix
}

func isAbsolute(p string) bool {
	if p == "" {
		return false
	}
	if path.IsAbs(p) || strings.HasPrefix(p, `\\`) {
		return true
	}
	// drive letter: C:\ or C:/
	return len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}
