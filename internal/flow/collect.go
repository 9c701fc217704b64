package flow

// Entry is one flow branch in a listing.
type Entry struct {
	Type    BranchType `json:"type"`
	Name    string     `json:"name"`
	Current bool       `json:"current"`
}

// Collect lists flow branches of the given types, or of every type when none
// are given, marking the checked-out branch.
func (s *Service) Collect(types ...BranchType) ([]Entry, error) {
	if len(types) == 0 {
		types = Types()
	}

	_, cur, hasCur, err := s.Current()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, t := range types {
		names, err := s.Branches(t)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			entries = append(entries, Entry{
				Type:    t,
				Name:    n,
				Current: hasCur && cur.Type == t && cur.Name == n,
			})
		}
	}
	return entries, nil
}
