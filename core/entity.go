package core

// Entity is a unique identifier for a simulation entity
// IDs are allocated monotonically by the world and never reused within a run
type Entity uint64

// NoEntity is the zero value, never allocated by a world
const NoEntity Entity = 0
