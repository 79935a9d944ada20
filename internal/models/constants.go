package models

// CategoryUncategorized is the default category. It always exists in the
// store, never carries keywords, and cannot be deleted.
const CategoryUncategorized = "Uncategorized"

// File permissions
const (
	PermissionStoreFile  = 0600
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
