package version

// Overridden at build time via -ldflags.
var (
	ver    = "0.0.0-dev"
	commit = ""
	date   = ""
)

// Info carries build provenance for the CLI.
type Info struct {
	Version string
	Commit  string
	Date    string
}

func GetInfo() Info {
	return Info{
		Version: ver,
		Commit:  commit,
		Date:    date,
	}
}
