// Package desktop enumerates installed applications from XDG desktop entries.
package desktop

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"github.com/go-ini/ini"
)

const (
	entrySection    = "Desktop Entry"
	desktopExt      = ".desktop"
	categoryDefault = "Uncategorized"
)

// categoryMap is checked in order; the first freedesktop category found wins.
var categoryMap = []struct {
	freedesktop string
	label       string
}{
	{"AudioVideo", "Multimedia"},
	{"Development", "Dev Tools"},
	{"Game", "Gaming"},
	{"Graphics", "Creative"},
	{"Network", "Internet"},
	{"Office", "Productivity"},
	{"System", "System"},
	{"Utility", "Utilities"},
}

// fieldCodes are the Exec placeholders stripped from commands.
var fieldCodes = strings.NewReplacer("%U", "", "%u", "", "%F", "", "%f", "")

// Catalog implements port.AppCatalog over desktop entry directories.
type Catalog struct {
	dirs   []string
	parsed *entryCache
}

var _ port.AppCatalog = (*Catalog)(nil)

// New creates a catalog over dirs. Later directories override earlier ones
// for entries with the same name.
func New(dirs ...string) *Catalog {
	return &Catalog{dirs: dirs, parsed: newEntryCache(defaultCacheSize)}
}

// NewDefault reads the system directory and the user's local one.
func NewDefault(home string) *Catalog {
	return New("/usr/share/applications", filepath.Join(home, ".local", "share", "applications"))
}

// ListApps reads the directories on each call. Files unchanged since the
// previous call are not parsed again.
func (c *Catalog) ListApps(ctx context.Context) (entity.AppCatalog, error) {
	log := logging.FromContext(ctx)

	catalog := entity.AppCatalog{categoryDefault: {}}
	for _, m := range categoryMap {
		catalog[m.label] = map[string]string{}
	}

	for _, dir := range c.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Debug().Err(err).Str("dir", dir).Msg("skipping applications directory")
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), desktopExt) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			parsed, err := c.load(path, e)
			if err != nil || !parsed.ok {
				log.Trace().Str("path", path).Msg("skipping desktop entry")
				continue
			}
			catalog[parsed.category][parsed.name] = parsed.command
		}
	}

	return catalog, nil
}

func (c *Catalog) load(path string, e os.DirEntry) (parsedEntry, error) {
	info, err := e.Info()
	if err != nil {
		return parsedEntry{}, err
	}
	if cached, ok := c.parsed.get(path, info.ModTime(), info.Size()); ok {
		return cached, nil
	}

	category, name, command, ok := parseEntry(path)
	parsed := parsedEntry{
		modTime:  info.ModTime(),
		size:     info.Size(),
		category: category,
		name:     name,
		command:  command,
		ok:       ok,
	}
	c.parsed.put(path, parsed)
	return parsed, nil
}

// parseEntry reads one desktop file. It reports false for hidden, malformed
// or non-application entries.
func parseEntry(path string) (category, name, command string, ok bool) {
	file, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters: "=",
		// Exec lines may legitimately contain '#' and ';'
		IgnoreInlineComment: true,
		Loose:               true,
	}, path)
	if err != nil {
		return "", "", "", false
	}

	section, err := file.GetSection(entrySection)
	if err != nil {
		return "", "", "", false
	}
	if t := section.Key("Type").String(); t != "" && t != "Application" {
		return "", "", "", false
	}
	if section.Key("NoDisplay").MustBool(false) || section.Key("Hidden").MustBool(false) {
		return "", "", "", false
	}

	name = strings.TrimSpace(section.Key("Name").String())
	command = commandFromExec(section.Key("Exec").String())
	if name == "" || command == "" {
		return "", "", "", false
	}

	return categorize(section.Key("Categories").String()), name, command, true
}

// commandFromExec keeps the program of an Exec line, without field codes.
func commandFromExec(exec string) string {
	fields := strings.Fields(exec)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fieldCodes.Replace(fields[0]), `"'`)
}

func categorize(categories string) string {
	present := make(map[string]bool)
	for _, c := range strings.Split(categories, ";") {
		if c = strings.TrimSpace(c); c != "" {
			present[c] = true
		}
	}
	for _, m := range categoryMap {
		if present[m.freedesktop] {
			return m.label
		}
	}
	return categoryDefault
}
