package common

const (
	ActionPush        = "PUSH"
	ActionPullRequest = "PULL_REQUEST"
	ActionMerge       = "MERGE"

	EventTypePush        = "push"
	EventTypePullRequest = "pull_request"

	GithubEventHeader     = "X-GitHub-Event"
	GithubSignatureHeader = "X-Hub-Signature-256"

	BranchRefPrefix = "refs/heads/"
)

// KnownAction reports whether action is part of the closed set of stored actions.
func KnownAction(action string) bool {
	switch action {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}
