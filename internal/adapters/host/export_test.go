package host

// NewInspectorFor builds an Inspector over fixed host details.
func NewInspectorFor(goos, goarch string, lookPath func(string) (string, error), home string) *Inspector {
	return &Inspector{
		goos:     goos,
		goarch:   goarch,
		lookPath: lookPath,
		homeDir:  func() (string, error) { return home, nil },
	}
}
