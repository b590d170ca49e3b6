package narrative

import "context"

// MockClient is a test double for the provider client.
type MockClient struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Prompts      []string
}

// Generate records the prompt and delegates to GenerateFunc.
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", context.DeadlineExceeded
}
