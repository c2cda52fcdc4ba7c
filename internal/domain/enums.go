package domain

// VisualizationType selects the page layout and the visual_data schema of a word.
type VisualizationType string

const (
	VisualizationMap      VisualizationType = "MAP"
	VisualizationTree     VisualizationType = "TREE"
	VisualizationTimeline VisualizationType = "TIMELINE"
	VisualizationGrid     VisualizationType = "GRID"
)

func (v VisualizationType) String() string { return string(v) }

func (v VisualizationType) IsValid() bool {
	switch v {
	case VisualizationMap, VisualizationTree, VisualizationTimeline, VisualizationGrid:
		return true
	}
	return false
}

// AllVisualizationTypes returns the known types in display order.
func AllVisualizationTypes() []VisualizationType {
	return []VisualizationType{
		VisualizationMap,
		VisualizationTree,
		VisualizationTimeline,
		VisualizationGrid,
	}
}

// PageStatus is the outcome of preparing a word for its renderer.
type PageStatus string

const (
	PageStatusOK          PageStatus = "ok"
	PageStatusInvalidData PageStatus = "invalid_data"
)

func (s PageStatus) String() string { return string(s) }
