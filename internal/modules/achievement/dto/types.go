package dto

type Item struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Type        string
	Target      float64
	Current     float64
	Progress    float64
	Earned      bool
}

type ListOutput struct {
	Items  []Item
	Earned int
}

// NewlyEarnedSince lists items earned in o that were not earned in before.
func (o ListOutput) NewlyEarnedSince(before ListOutput) []Item {
	had := make(map[string]bool, len(before.Items))
	for _, it := range before.Items {
		if it.Earned {
			had[it.ID] = true
		}
	}
	var out []Item
	for _, it := range o.Items {
		if it.Earned && !had[it.ID] {
			out = append(out, it)
		}
	}
	return out
}
