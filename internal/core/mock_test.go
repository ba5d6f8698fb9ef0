package core

import (
	"context"

	"github.com/verificabr/verifica/internal/store"
)

type MockLLM struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

type MockGatherer struct {
	Evidence string
	Queries  []string
}

func (m *MockGatherer) Gather(ctx context.Context, query string) string {
	m.Queries = append(m.Queries, query)
	return m.Evidence
}

type MockArchiver struct {
	URL      string
	Err      error
	Uploaded [][]byte
}

func (m *MockArchiver) ArchiveImage(ctx context.Context, data []byte) (string, error) {
	m.Uploaded = append(m.Uploaded, data)
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}

type MockStore struct {
	Saved []*store.Verification
	Err   error
}

func (m *MockStore) Save(ctx context.Context, v *store.Verification) (*store.Verification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if v.ID == "" {
		v.ID = "test-id"
	}
	m.Saved = append(m.Saved, v)
	return v, nil
}
