package changespec

// FileChange records a stylesheet whose content was rewritten.
type FileChange struct {
	Path       string   `json:"path"`
	Migrations []string `json:"migrations"`
}

// FileFailure records a stylesheet a migration could not handle.
type FileFailure struct {
	Path      string `json:"path"`
	Migration string `json:"migration,omitempty"`
	Error     string `json:"error"`
}

// ApplyResult reports which files were changed and which failed. Files that
// needed no change appear in neither list.
type ApplyResult struct {
	Scanned int           `json:"scanned"`
	Changed []FileChange  `json:"changed"`
	Failed  []FileFailure `json:"failed"`
	DryRun  bool          `json:"dry_run"`
}

// OK reports whether every scanned file was migrated without error.
func (r ApplyResult) OK() bool {
	return len(r.Failed) == 0
}
