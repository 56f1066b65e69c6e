package evdev

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	evdev "github.com/holoplot/go-evdev"
)

// ByIDDir holds the stable symlinks udev creates for input devices.
const ByIDDir = "/dev/input/by-id"

// DeviceInfo describes an input node a deck can be bound to.
type DeviceInfo struct {
	Path  string
	Name  string
	Links []string
}

// ListDevices returns every evdev node with its name and by-id symlinks.
func ListDevices() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	links := byIDLinks(ByIDDir)
	devices := make([]DeviceInfo, 0, len(paths))
	for _, p := range paths {
		devices = append(devices, DeviceInfo{
			Path:  p.Path,
			Name:  p.Name,
			Links: links[p.Path],
		})
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Path < devices[j].Path })
	return devices, nil
}

// byIDLinks maps resolved device nodes to the symlinks pointing at them.
func byIDLinks(dir string) map[string][]string {
	out := make(map[string][]string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		link := filepath.Join(dir, e.Name())
		target, err := filepath.EvalSymlinks(link)
		if err != nil {
			continue
		}
		out[target] = append(out[target], link)
	}
	for k := range out {
		sort.Strings(out[k])
	}
	return out
}
