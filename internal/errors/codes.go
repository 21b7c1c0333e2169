package errors

// Process exit codes. Wrapper scripts branch on these, so the values
// are part of the CLI contract and must stay stable.
const (
	Success     = 0
	InputError  = 1  // bad flags, bad scenario file, unknown profile
	SourceError = 2  // assumptions document unreadable or invalid
	WriteError  = 10 // rendering a document to disk failed
	AuditFailed = 20 // audit ran fine but the document did not pass
)
