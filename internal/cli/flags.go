package cli

import "fpt/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Filter     string
	TraceDepth int
	Solutions  bool
	NoProgress bool
	NoHistory  bool
	TestCases  bool
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:     f.Filter,
		TraceDepth: f.TraceDepth,
		Solutions:  f.Solutions,
		NoProgress: f.NoProgress,
		NoHistory:  f.NoHistory,
		TestCases:  f.TestCases,
		Limit:      f.Limit,
	}
}
