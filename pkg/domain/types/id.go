package types

import "github.com/google/uuid"

// CycleID identifies one push cycle in logs and status output
type CycleID string

func NewCycleID() CycleID {
	return CycleID(uuid.NewString())
}

func (x CycleID) String() string {
	return string(x)
}
