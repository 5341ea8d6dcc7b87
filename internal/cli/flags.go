package cli

import "xrun/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Selector    string
	Debug       bool
	ProgressBar bool
	TestCases   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		Selector:    f.Selector,
		Debug:       f.Debug,
		ProgressBar: f.ProgressBar,
		TestCases:   f.TestCases,
	}
}
