package domain

// VisualPayload is the validated visual_data of a word. The concrete type is
// selected by the word's VisualizationType.
type VisualPayload interface {
	VisualizationType() VisualizationType
}

// MapVisual traces a word's journey across places.
type MapVisual struct {
	Stops []MapStop `json:"stops" validate:"required,min=1,dive"`
}

// MapStop is one place the word passed through. Coordinates are pointers so
// that a missing lat or lng is told apart from 0.
type MapStop struct {
	Name     string   `json:"name"     validate:"required"`
	Form     string   `json:"form,omitempty"`
	Language string   `json:"language,omitempty"`
	Era      string   `json:"era,omitempty"`
	Lat      *float64 `json:"lat"      validate:"required,gte=-90,lte=90"`
	Lng      *float64 `json:"lng"      validate:"required,gte=-180,lte=180"`
}

func (MapVisual) VisualizationType() VisualizationType { return VisualizationMap }

// TreeVisual is a family tree of related forms rooted at the ancestor form.
type TreeVisual struct {
	Root *TreeNode `json:"root" validate:"required"`
}

// TreeNode is one form in the tree.
type TreeNode struct {
	Label    string      `json:"label"              validate:"required"`
	Language string      `json:"language,omitempty"`
	Meaning  string      `json:"meaning,omitempty"`
	Children []*TreeNode `json:"children,omitempty" validate:"omitempty,dive,required"`
}

func (TreeVisual) VisualizationType() VisualizationType { return VisualizationTree }

// TimelineVisual orders the word's history by era.
type TimelineVisual struct {
	Events []TimelineEvent `json:"events" validate:"required,min=1,dive"`
}

// TimelineEvent is one dated step in the word's history.
type TimelineEvent struct {
	Era         string `json:"era"   validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (TimelineVisual) VisualizationType() VisualizationType { return VisualizationTimeline }

// GridVisual lays out cognates side by side.
type GridVisual struct {
	Columns int        `json:"columns,omitempty" validate:"omitempty,min=1,max=6"`
	Cells   []GridCell `json:"cells"             validate:"required,min=1,dive"`
}

// GridCell is one cognate.
type GridCell struct {
	Term     string `json:"term" validate:"required"`
	Language string `json:"language,omitempty"`
	Meaning  string `json:"meaning,omitempty"`
}

func (GridVisual) VisualizationType() VisualizationType { return VisualizationGrid }
