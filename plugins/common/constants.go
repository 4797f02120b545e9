package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogSessionToken describes backend session log entry.
	LogSessionToken = "session"
	// LogBackendToken describes backend name log entry.
	LogBackendToken = "backend"
	// LogOperationToken describes backend operation log entry.
	LogOperationToken = "operation"
	// LogValueToken describes requested setting value log entry.
	LogValueToken = "value"
	// LogMessageToken describes backend bus message log entry.
	LogMessageToken = "message"
	// LogEventToken describes application event log entry.
	LogEventToken = "event"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)

const (
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogNameToken describes name log entry.
	LogNameToken = "name"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogIDToken describes subscription id log entry.
	LogIDToken = "id"
)
