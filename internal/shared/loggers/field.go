package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldHost        = "host"
	FieldProvider    = "provider"
	FieldBatchSize   = "batch_size"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldPartitionId = "partition_id"
)
