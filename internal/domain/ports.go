package domain

// SourceCollector walks a directory and returns the Terraform files in it.
type SourceCollector interface {
	Collect(root string, excludePaths ...string) (*SourceSet, error)

	// ModuleRoots lists nested modules/<name> directories under root that
	// contain Terraform files, for separate per-module reports.
	ModuleRoots(root string) ([]string, error)
}

// ConfigLoader reads the optional project configuration from a scan root.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// ReportWriter persists rendered reports outside the console. Separate
// module mode passes one report per scanned root.
type ReportWriter interface {
	Write(path string, reports []*Report) error
}
