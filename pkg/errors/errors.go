package errors

// Error message constants for the ts-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToParseFile  = "failed to parse file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToStatFile   = "failed to stat file"
	ErrMsgUnsupportedFile    = "unsupported file type"
	ErrMsgFailedToRenderJSON = "failed to render diagnostics as JSON"

	// Directory processing errors
	ErrMsgFailedToCheckPath      = "failed to check path"
	ErrMsgFailedToFindFiles      = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess   = "%d files failed to process"
	ErrMsgViolationsFound        = "%d import ordering problems found"
	ErrMsgFailedToLoadConfig     = "failed to load config"
	ErrMsgFailedToLoadConfigFile = "error reading config file %s"
	ErrMsgFailedToCreateLogger   = "failed to create logger"

	// Info/warning messages
	InfoMsgNoSourceFilesFound = "No source files found in directory"
	InfoMsgFoundSourceFiles   = "Found source files in directory"
	InfoMsgFixedFile          = "Fixed imports"
	InfoMsgProcessedCount     = "Processed files"
	InfoMsgUsingConfigFile    = "Using config file"
)
