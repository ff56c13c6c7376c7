package domain

// Item represents a single entry of the item catalogue
type Item struct {
	Name      string     `json:"name"`
	Img       string     `json:"img"`
	Bonus     string     `json:"bonus"`
	Combos    []string   `json:"combos,omitempty"`
	BuiltWith *BuiltWith `json:"built_with,omitempty"`
}

// BuiltWith names the two base items a combined item is crafted from
type BuiltWith struct {
	Item1 string `json:"item_1"`
	Item2 string `json:"item_2"`
}

// HasCombos reports whether the item lists the items it combines into
func (i Item) HasCombos() bool {
	return len(i.Combos) > 0
}

// IsCombined reports whether the item is crafted from two components
func (i Item) IsCombined() bool {
	return i.BuiltWith != nil
}

// Components returns the two components of a combined item, or nil
func (i Item) Components() []string {
	if i.BuiltWith == nil {
		return nil
	}
	return []string{i.BuiltWith.Item1, i.BuiltWith.Item2}
}
