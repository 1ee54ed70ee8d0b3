package events

import "fmt"

// lineFictiveLoadName names the fictive load a short circuit adds at one
// endpoint of a line, mirroring the source convention
// FICT_LOAD_<parallel>_<other bus>_<owning bus>.
func lineFictiveLoadName(parallelID int, owningBus, otherBus string) string {
	return fmt.Sprintf("FICT_LOAD_%d_%s_%s", parallelID, otherBus, owningBus)
}

// busFictiveLoadName names the fictive load a bus short circuit adds.
func busFictiveLoadName(busName string) string {
	return fmt.Sprintf("FICT_LOAD_%s", busName)
}
