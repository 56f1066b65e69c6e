package entity

// PurgeTargetType identifies what kind of purgeable item this is.
type PurgeTargetType string

const (
	PurgeTargetConfig   PurgeTargetType = "config"
	PurgeTargetScripts  PurgeTargetType = "scripts"
	PurgeTargetData     PurgeTargetType = "data"
	PurgeTargetState    PurgeTargetType = "state"
	PurgeTargetManPages PurgeTargetType = "man"
)

// AllPurgeTargetTypes lists the targets in removal order. Scripts live
// inside the data directory and go first.
func AllPurgeTargetTypes() []PurgeTargetType {
	return []PurgeTargetType{
		PurgeTargetConfig,
		PurgeTargetScripts,
		PurgeTargetData,
		PurgeTargetState,
		PurgeTargetManPages,
	}
}

// PurgeTarget represents something that can be purged. Most targets are a
// single directory; man pages are the generated synapse*.1 files.
type PurgeTarget struct {
	Type        PurgeTargetType
	Paths       []string
	Description string
	Size        int64
	Exists      bool
}

// PurgeResult represents the outcome of purging a single target.
type PurgeResult struct {
	Target  PurgeTarget
	Success bool
	Error   error
}
