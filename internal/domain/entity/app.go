package entity

// AppEntry is a launchable application offered by the assignment picker.
type AppEntry struct {
	Category string
	Name     string
	Command  string
}

// AppCatalog groups application commands by category, then by name.
type AppCatalog map[string]map[string]string

// Entries flattens the catalog.
func (c AppCatalog) Entries() []AppEntry {
	var out []AppEntry
	for cat, apps := range c {
		for name, cmd := range apps {
			out = append(out, AppEntry{Category: cat, Name: name, Command: cmd})
		}
	}
	return out
}
