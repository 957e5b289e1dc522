package domain

// IsVisible reports whether a component type applies to a bike with the
// given configuration. Unconfigured bikes show everything.
func IsVisible(t ComponentType, cfg *BikeConfig) bool {
	if cfg == nil {
		return true
	}

	if cfg.ShiftingType == Electronic && (t == ShiftCables || t == Cables) {
		return false
	}

	switch cfg.BrakeType {
	case Disc:
		if t == BrakeCables {
			return false
		}
	case Rim:
		if t == BrakeRotorFront || t == BrakeRotorRear || t == BrakeRotors {
			return false
		}
	}

	if cfg.TireSystem == Tubeless && (t == InnerTubeFront || t == InnerTubeRear) {
		return false
	}

	return true
}

// GroupEntry is either a matched front/rear pair or a single component.
type GroupEntry struct {
	Family *Family    `json:"family,omitempty"`
	Front  *Component `json:"front,omitempty"`
	Rear   *Component `json:"rear,omitempty"`
	Solo   *Component `json:"solo,omitempty"`
}

func (e GroupEntry) Paired() bool {
	return e.Family != nil
}

type ComponentGroup struct {
	Category Category     `json:"category"`
	Entries  []GroupEntry `json:"entries"`
}

// GroupComponents buckets the visible active components by category in
// CategoryOrder. Family halves render as one pair only when both are present.
func GroupComponents(components []*Component, cfg *BikeConfig) []ComponentGroup {
	byCategory := make(map[Category][]*Component, len(CategoryOrder))
	for _, c := range components {
		if !c.Active() || !IsVisible(c.Type, cfg) {
			continue
		}
		cat := c.Type.Category()
		byCategory[cat] = append(byCategory[cat], c)
	}

	groups := make([]ComponentGroup, 0, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		list := byCategory[cat]
		if len(list) == 0 {
			continue
		}
		groups = append(groups, ComponentGroup{Category: cat, Entries: groupEntries(list)})
	}
	return groups
}

func groupEntries(list []*Component) []GroupEntry {
	byType := make(map[ComponentType]*Component, len(list))
	for _, c := range list {
		if !c.IsCustom() {
			if _, seen := byType[c.Type]; !seen {
				byType[c.Type] = c
			}
		}
	}

	paired := make(map[ComponentType]bool)
	entries := make([]GroupEntry, 0, len(list))
	for _, c := range list {
		if paired[c.Type] && byType[c.Type] == c {
			continue
		}

		family, ok := FamilyOf(c.Type)
		if ok && byType[c.Type] == c {
			front, rear := byType[family.Front], byType[family.Rear]
			if front != nil && rear != nil {
				f := family
				entries = append(entries, GroupEntry{Family: &f, Front: front, Rear: rear})
				paired[family.Front] = true
				paired[family.Rear] = true
				continue
			}
		}

		entries = append(entries, GroupEntry{Solo: c})
	}
	return entries
}
