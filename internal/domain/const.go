package domain

const (
	// Messaging constants
	AUDIT_STREAM_NAME    = "PICKBOARD_AUDITS"
	AUDIT_SUBJECT_PREFIX = "pickboard.audit"

	// Registry constants
	DEFAULT_TEAMS_REGISTRY_PATH = "config/teams.json"
)
