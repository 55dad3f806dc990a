package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldPhone       = "phone"
	FieldIntent      = "intent"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldSheetsRef   = "sheets_ref"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentBot     = "bot"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentNotify  = "notify"
)

// Operations defines standard operation names
const (
	OpInsert   = "insert"
	OpQuery    = "query"
	OpExport   = "export"
	OpNotify   = "notify"
	OpParse    = "parse"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
