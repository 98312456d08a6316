package domain

// Label distinguishes the two sides of a comparison.
type Label string

const (
	// LabelOld tags artifacts built from the old revision.
	LabelOld Label = "old"
	// LabelNew tags artifacts built from the new revision.
	LabelNew Label = "new"
)

// Labels returns both labels in the order they are processed.
func Labels() []Label {
	return []Label{LabelOld, LabelNew}
}

// String returns the label as a plain string.
func (l Label) String() string {
	return string(l)
}
