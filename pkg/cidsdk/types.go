package cidsdk

// ConfigCurrent is the daemon configuration visible to the action.
type ConfigCurrent struct {
	Debug        bool              `json:"debug"`
	Log          map[string]string `json:"log"`
	ProjectDir   string            `json:"project_dir"`
	ArtifactDir  string            `json:"artifact_dir"`
	TempDir      string            `json:"temp_dir"`
	HostName     string            `json:"host_name"`
	HostUserID   string            `json:"host_user_id"`
	HostUserName string            `json:"host_user_name"`
	HostGroupID  string            `json:"host_group_id"`
	// Config is the action specific configuration, its shape is up to the action.
	Config any `json:"config"`
}

// ProjectInfo describes the project and the host user the action runs as.
type ProjectInfo struct {
	ProjectDir      string `json:"project_dir"`
	WorkDir         string `json:"work_dir"`
	UserID          string `json:"user_id"`
	GroupID         string `json:"group_id"`
	UserLoginName   string `json:"user_login_name"`
	UserDisplayName string `json:"user_display_name"`
	PathTemp        string `json:"path_temp"`
	PathDist        string `json:"path_dist"`
}

// LogMessage is forwarded to the daemon log.
type LogMessage struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Context map[string]any `json:"context"`
}
