package lsp

import "sync"

// document is an open text document together with its latest scan.
type document struct {
	text   string
	result *AnalysisResult
}

// DocumentStore holds open documents keyed by URI. Every Open and Update
// rescans the text, so readers always see a result matching the content.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Open stores content for uri and returns its scan result.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces the content for uri and returns its scan result.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	result := Analyze(content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{text: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the content of uri.
func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.text, ok
}

// Result returns the scan result of uri, or nil if it is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri].result
}
