// Package models contains data types and constants for the school chatbot backend.
package models

// DefaultBaseURL is the backend origin used when nothing else is configured
const DefaultBaseURL = "http://127.0.0.1:8000"

// Backend endpoint paths, resolved against the configured base URL
const (
	PathChatbot      = "/chatbot"
	PathAsk          = "/ask"
	PathUploadPDF    = "/upload-pdf"
	PathUploadExcel  = "/upload-excel"
	PathAnalyzeURL   = "/analyze-url"
	PathProcessVideo = "/process-video"
)

// Keywords that send a message to the document endpoint instead of the chat endpoint
var DocumentKeywords = []string{"pdf", "summarize"}

// Messages rendered into the chat transcript
const (
	MsgNoResponse     = "❌ No response received."
	MsgConnectError   = "❌ Error connecting to chatbot."
	MsgUploadError    = "❌ Error uploading file."
	MsgUploadSuccess  = "📂 File \"%s\" uploaded successfully!"
	MsgAnalyzeError   = "❌ Error analyzing URL."
	MsgVideoError     = "❌ Error processing video."
	MsgEmptyLineInput = "Please enter a message!"
)

// Messages rendered into the single-line display
const (
	LineNoResponse   = "No response received."
	LineConnectError = "Error connecting to chatbot."
)

// Element identifiers of the chat widget
const (
	ElementSend     = "chatbot-send"
	ElementInput    = "chatbot-input"
	ElementMessages = "chatbot-messages"
	ElementUpload   = "chatbot-upload"

	ElementLineInput   = "user-input"
	ElementLineDisplay = "chatbot-response"
)
