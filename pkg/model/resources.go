package model

// ResourceKind identifies a countable resource a node can offer and a task can require.
type ResourceKind string

const (
	MilliCPU              ResourceKind = "milliCpu"
	MemoryMiB             ResourceKind = "memoryMiB"
	BatteryMAh            ResourceKind = "batteryMAh"
	RechargeCapacityWatts ResourceKind = "rechargeCapWatts"
)

// CPUArchitecture identifies an instruction set a node's CPU implements and a task's
// container image targets.
type CPUArchitecture string

const (
	Intel64 CPUArchitecture = "x86_64"
	ARM64   CPUArchitecture = "arm64"
)

// ResourceSet is a mapping from resource kind to an integer quantity.
type ResourceSet map[ResourceKind]int64

// Clone returns an independent copy of rs.
func (rs ResourceSet) Clone() ResourceSet {
	out := make(ResourceSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// Get returns the quantity for kind, or 0 if rs does not mention it.
func (rs ResourceSet) Get(kind ResourceKind) int64 {
	return rs[kind]
}
