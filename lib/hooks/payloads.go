package hooks

import "time"

// Typed views of the GitHub webhook payloads we consume. Only the fields the
// normalizer extracts are declared, everything else is ignored on decode.

type PushPayload struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	Pusher     Actor  `json:"pusher"`
	HeadCommit struct {
		ID        string    `json:"id"`
		Timestamp time.Time `json:"timestamp"`
	} `json:"head_commit"`
}

type PullRequestPayload struct {
	Action      string `json:"action"`
	PullRequest struct {
		Number    int        `json:"number"`
		User      Actor      `json:"user"`
		Head      BranchRef  `json:"head"`
		Base      BranchRef  `json:"base"`
		Merged    bool       `json:"merged"`
		MergedBy  *Actor     `json:"merged_by"`
		CreatedAt *time.Time `json:"created_at"`
		MergedAt  *time.Time `json:"merged_at"`
	} `json:"pull_request"`
}

type Actor struct {
	// pushers carry "name", pull request users carry "login"
	Name  string `json:"name"`
	Login string `json:"login"`
}

func (a Actor) Username() string {
	if a.Login != "" {
		return a.Login
	}
	return a.Name
}

type BranchRef struct {
	Ref string `json:"ref"`
}
