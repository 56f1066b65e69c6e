package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)

	ScriptsDir() (string, error)
	LogDir() (string, error)

	// ManDir is where generated man pages are installed.
	ManDir() (string, error)
}
