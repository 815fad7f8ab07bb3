package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldRecordKind = "record_kind"
	FieldRecordID   = "record_id"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldAmount     = "amount"
	FieldCategory   = "category"
	FieldBackend    = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentEvents  = "events"
	ComponentCharts  = "charts"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpRemove   = "remove"
	OpSnapshot = "snapshot"
	OpLoad     = "load"
	OpSave     = "save"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
