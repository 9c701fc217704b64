package flow

// Action is an operation on an existing or new flow branch.
type Action int

const (
	ActionStart Action = iota
	ActionFinish
	ActionPublish
	ActionPull
)

// String returns the string representation of the Action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionFinish:
		return "finish"
	case ActionPublish:
		return "publish"
	case ActionPull:
		return "pull"
	default:
		return "unknown"
	}
}

// Support branches are long-lived maintenance lines: they are started from a
// tag and never finished, published or pulled through flowkit.
var unsupportedActions = map[BranchType]map[Action]struct{}{
	Support: {ActionFinish: {}, ActionPublish: {}, ActionPull: {}},
}

// Allowed reports whether action a may be performed on branches of type t.
func Allowed(t BranchType, a Action) bool {
	_, denied := unsupportedActions[t][a]
	return !denied
}

// requiresBase reports whether starting a branch of type t needs an explicit base.
func requiresBase(t BranchType) bool {
	return t == Support
}

// tagsOnFinish reports whether finishing a branch of type t creates a tag.
func tagsOnFinish(t BranchType) bool {
	return t == Release || t == Hotfix
}

func requireAllowed(t BranchType, a Action) error {
	if !Allowed(t, a) {
		return &UnsupportedActionError{Type: t, Action: a}
	}
	return nil
}
