package handler

// Multipart form field names accepted by the import endpoints.
const (
	FileFormField         = "file"
	AssignedUserFormField = "assigned_user_email"
	MappingsFormField     = "column_mappings"
)
