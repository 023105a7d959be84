package dto

// ReadinessResponse is the orchestrator-facing readiness body. Details maps
// each readiness controller to its detail text.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

// StatusResponse is returned by the status endpoint while the service is
// ready.
type StatusResponse struct {
	Hostname  string    `json:"hostname"`
	StartedAt string    `json:"started_at"`
	Uptime    string    `json:"uptime"`
	Build     BuildInfo `json:"build"`
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version    string `json:"version"`
	GitVersion string `json:"git_version"`
	BuildTime  string `json:"build_time"`
	LastCommit Commit `json:"last_commit"`
}

// Commit identifies the last commit the binary was built from.
type Commit struct {
	Author string `json:"author"`
	ID     string `json:"id"`
	Time   string `json:"time"`
}
