package api

import (
	"context"
	"sync"

	"github.com/Samit-B/school-management/internal/models"
)

// MockChatClient is a mock implementation of ChatClientInterface for testing
type MockChatClient struct {
	// Mock return values
	AskVal     *models.Reply
	AskErr     error
	UploadVal  *models.UploadResult
	UploadErr  error
	AnalyzeVal *models.Reply
	AnalyzeErr error
	VideoVal   *models.Reply
	VideoErr   error
	BaseURLVal string
	AskFunc    func(ctx context.Context, message string) (*models.Reply, error)
	UploadFunc func(ctx context.Context, file *models.File) (*models.UploadResult, error)

	// Call recorders
	mu           sync.Mutex
	AskCalls     []string
	UploadCalls  []string
	ExcelCalls   []string
	AnalyzeCalls []string
	VideoCalls   []string
}

// Ensure MockChatClient implements ChatClientInterface
var _ ChatClientInterface = (*MockChatClient)(nil)

func (m *MockChatClient) Ask(ctx context.Context, message string) (*models.Reply, error) {
	m.mu.Lock()
	m.AskCalls = append(m.AskCalls, message)
	fn := m.AskFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, message)
	}
	return m.AskVal, m.AskErr
}

func (m *MockChatClient) UploadPDF(ctx context.Context, file *models.File) (*models.UploadResult, error) {
	m.mu.Lock()
	m.UploadCalls = append(m.UploadCalls, file.Name)
	fn := m.UploadFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, file)
	}
	return m.UploadVal, m.UploadErr
}

func (m *MockChatClient) UploadExcel(ctx context.Context, file *models.File) (*models.UploadResult, error) {
	m.mu.Lock()
	m.ExcelCalls = append(m.ExcelCalls, file.Name)
	m.mu.Unlock()
	return m.UploadVal, m.UploadErr
}

func (m *MockChatClient) AnalyzeURL(ctx context.Context, link string) (*models.Reply, error) {
	m.mu.Lock()
	m.AnalyzeCalls = append(m.AnalyzeCalls, link)
	m.mu.Unlock()
	return m.AnalyzeVal, m.AnalyzeErr
}

func (m *MockChatClient) ProcessVideo(ctx context.Context, link string) (*models.Reply, error) {
	m.mu.Lock()
	m.VideoCalls = append(m.VideoCalls, link)
	m.mu.Unlock()
	return m.VideoVal, m.VideoErr
}

func (m *MockChatClient) BaseURL() string {
	if m.BaseURLVal == "" {
		return models.DefaultBaseURL
	}
	return m.BaseURLVal
}

// AskCount returns the number of Ask calls so far
func (m *MockChatClient) AskCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.AskCalls)
}
