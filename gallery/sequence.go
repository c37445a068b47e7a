package gallery

// Sequence holds the padded color and project rows of one product.
// The combined navigation order is always colors followed by projects.
type Sequence struct {
	colors   []string
	projects []string
	all      []string
}

// NewSequence pads both rows to SlotCount
func NewSequence(colorImages, projectImages []string) Sequence {
	colors := PadToTen(colorImages, KindColor)
	projects := PadToTen(projectImages, KindProject)

	all := make([]string, 0, len(colors)+len(projects))
	all = append(all, colors...)
	all = append(all, projects...)

	return Sequence{colors: colors, projects: projects, all: all}
}

// Colors returns a copy of the color row
func (s Sequence) Colors() []string {
	return append([]string(nil), s.colors...)
}

// Projects returns a copy of the project row
func (s Sequence) Projects() []string {
	return append([]string(nil), s.projects...)
}

// All returns a copy of the combined navigation order
func (s Sequence) All() []string {
	return append([]string(nil), s.all...)
}

// Len is the length of the combined sequence
func (s Sequence) Len() int {
	return len(s.all)
}

// At returns the ref at position i of the combined sequence
func (s Sequence) At(i int) (string, bool) {
	if i < 0 || i >= len(s.all) {
		return "", false
	}
	return s.all[i], true
}

// IndexOf returns the first position of ref in the combined sequence, or -1
func (s Sequence) IndexOf(ref string) int {
	for i, candidate := range s.all {
		if candidate == ref {
			return i
		}
	}
	return -1
}
