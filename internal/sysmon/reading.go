package sysmon

// Reading pairs a Snapshot with the host Identity, and carries the memory
// figures already converted to MiB. It is the document served by the JSON
// outputs.
type Reading struct {
	Identity Identity `json:"identity"`
	Snapshot Snapshot `json:"snapshot"`
	TotalMiB uint64   `json:"memory_total_mib"`
	UsedMiB  uint64   `json:"memory_used_mib"`
}

// NewReading builds a Reading from one identity query and one refresh.
func NewReading(id Identity, snap Snapshot) Reading {
	return Reading{
		Identity: id,
		Snapshot: snap,
		TotalMiB: snap.TotalMiB(),
		UsedMiB:  snap.UsedMiB(),
	}
}
