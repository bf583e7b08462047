// Package api provides the client for the school chatbot backend.
package api

// GJSON paths for extracting values from backend responses.
// Lists are in priority order: the first truthy field wins.
var (
	// Chat and document answers: {"response": ...} from /ask, {"reply": ...} from /chatbot
	ChatReplyPaths = []string{"response", "reply"}

	// /analyze-url answers {"message": ...} or {"error": ...}
	AnalyzeOKPaths    = []string{"message"}
	AnalyzeErrorPaths = []string{"error", "detail"}

	// /process-video answers {"transcript": {"message"|"error": ...}} or {"detail": ...}
	VideoOKPaths    = []string{"transcript.message"}
	VideoErrorPaths = []string{"transcript.error", "detail"}
)

// Upload response paths
const (
	PathUploadMessage = "message"
	PathUploadText    = "pdf_text"
	PathUploadError   = "error"
	PathDetail        = "detail"
)
