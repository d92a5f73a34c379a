package cidsdk

// CommandExecution is a command the daemon runs on behalf of the action.
type CommandExecution struct {
	Command       string            `json:"command"`
	CaptureOutput bool              `json:"capture_output"`
	WorkDir       string            `json:"work_dir,omitempty"`
	Env           map[string]string `json:"env,omitzero"`
	// Ports are exposed when the command runs inside a container.
	Ports []int `json:"ports,omitzero"`
	// Constraint restricts the version of the executable, e.g. ">= 1.20.0".
	Constraint string `json:"constraint,omitempty"`
}

type CommandExecutionResult struct {
	Dir     string `json:"dir"`
	Command string `json:"command"`
	Code    int    `json:"code"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
	Error   string `json:"error"`
}

// Failed reports whether the command exited non-zero or could not be run.
func (r *CommandExecutionResult) Failed() bool {
	return r.Code != 0 || r.Error != ""
}
