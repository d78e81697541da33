package wizard

// PagesMsg carries the result of FetchPages.
type PagesMsg struct {
	Pages []Page
	Err   error
}

// MetadataMsg carries the result of FetchMetadata.
type MetadataMsg struct {
	Metadata Metadata
}

// ContentMsg is a resolved content fetch, tagged with the navigation intent
// that requested it. Pass it to Controller.Apply.
type ContentMsg struct {
	Intent   uint64
	Target   View
	Markdown string
	Err      error
}

// ReadyMsg is sent once the host has been told the wizard is ready.
type ReadyMsg struct{}

// CompletedMsg is sent after the host has been told the wizard was completed.
type CompletedMsg struct{}

// DismissedMsg is sent after the host has been told the wizard was dismissed.
type DismissedMsg struct{}

// HelpOpenedMsg is sent after the host has been asked to open the help link.
type HelpOpenedMsg struct{}
