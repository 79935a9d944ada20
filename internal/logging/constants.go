package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldRow        = "row"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDirection  = "direction"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldStoreFile  = "store_file"
)
