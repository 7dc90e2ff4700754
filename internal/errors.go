package internal

import "fmt"

// StorageError represents errors accessing the local database
type StorageError struct {
	Path string
	Op   string // "open", "get", "set", "remove"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors decoding persisted or remote data
type ParseError struct {
	Source string // "conversation", "messages", "catalog"
	Key    string // storage key or record id
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RemoteError represents failures talking to the catalog backend or the LLM API
type RemoteError struct {
	Service string // "supabase", "deepseek"
	Op      string // "fetch", "search", "create", "delete", "completion"
	Status  int    // HTTP status, 0 when the request never completed
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote error [%s] %s: status %d: %v", e.Service, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("remote error [%s] %s: %v", e.Service, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

type errUnknownKind string

func (e errUnknownKind) Error() string {
	return fmt.Sprintf("unknown conversation kind %q", string(e))
}
