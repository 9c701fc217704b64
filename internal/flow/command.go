package flow

// FinishOptions controls `git flow <type> finish`.
type FinishOptions struct {
	// Fetch fetches from the remote before finishing (-F).
	Fetch bool
	// Keep keeps the branch after finishing (-k).
	Keep bool
	// Message is the tag message for types that tag on finish (-m).
	// Empty means "<type> <name>".
	Message string
}

// InitArgs returns the arguments for `git flow init` using default branch names.
func InitArgs(force bool) []string {
	args := []string{"init", "-d"}
	if force {
		args = append(args, "-f")
	}
	return args
}

// ListArgs returns the arguments for listing branches of type t.
func ListArgs(t BranchType) []string {
	return []string{t.String(), "list"}
}

// StartArgs returns the arguments for starting a branch. base is optional.
func StartArgs(t BranchType, name, base string) []string {
	args := []string{t.String(), "start", name}
	if base != "" {
		args = append(args, base)
	}
	return args
}

// FinishArgs returns the arguments for finishing a branch. Tagging types always
// get -m so git-flow never opens an editor for the tag.
func FinishArgs(t BranchType, name string, opts FinishOptions) []string {
	args := []string{t.String(), "finish"}
	if opts.Fetch {
		args = append(args, "-F")
	}
	if opts.Keep {
		args = append(args, "-k")
	}
	if tagsOnFinish(t) {
		msg := opts.Message
		if msg == "" {
			msg = t.String() + " " + name
		}
		args = append(args, "-m", msg)
	}
	return append(args, name)
}

// PublishArgs returns the arguments for publishing a branch to the remote.
func PublishArgs(t BranchType, name string) []string {
	return []string{t.String(), "publish", name}
}

// PullArgs returns the arguments for pulling a branch from remote.
func PullArgs(t BranchType, remote, name string) []string {
	return []string{t.String(), "pull", remote, name}
}
