package selector

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/photopane/photo-saver/internal/layout"
)

// AssignmentIDPrefix prefixes every assignment ID for log readability
const AssignmentIDPrefix = "asg-"

// Assignment maps every pane of one layout instance to a photo placement.
// Assignments are built whole by the selector and swapped whole by the
// rotation controller; they are never partially mutated.
type Assignment struct {
	ID         string
	Layout     *layout.Layout
	Placements []Placement
	CreatedAt  time.Time
}

// PlacementFor returns the placement for a pane by name
func (a *Assignment) PlacementFor(paneName string) (Placement, bool) {
	for _, p := range a.Placements {
		if p.Pane.Name == paneName {
			return p, true
		}
	}
	return Placement{}, false
}

// generateAssignmentID generates a unique assignment ID using UUID v7 for
// better uniqueness and time ordering
func generateAssignmentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(AssignmentIDPrefix+"%d", time.Now().UnixNano())
	}
	return AssignmentIDPrefix + id.String()
}

// SelectionFailure reports that a layout could not be fully assigned: some
// pane exhausted its category fallback list without an acceptable photo. The
// caller recovers by retrying with a different layout.
type SelectionFailure struct {
	Layout string
	Pane   string
}

func (e *SelectionFailure) Error() string {
	return fmt.Sprintf("no acceptable photo for pane %q in layout %q", e.Pane, e.Layout)
}
