package service

import (
	"fmt"
	"sort"
	"strings"

	"acres-chat/internal/model"
)

// SourceExtractor derives citation links from retrieval chunks. The link
// format is a compatibility contract with the document viewer:
// <base>/document/<documentId>?ext=<extension>&prefix=document.
type SourceExtractor struct {
	baseURL string
}

func NewSourceExtractor(baseURL string) *SourceExtractor {
	return &SourceExtractor{baseURL: strings.TrimRight(baseURL, "/")}
}

// Link builds the citation URL for one document. The extension is the part of
// the document name after the last dot, or empty when there is none.
func (e *SourceExtractor) Link(documentID, documentName string) string {
	ext := ""
	if i := strings.LastIndex(documentName, "."); i >= 0 {
		ext = documentName[i+1:]
	}
	return fmt.Sprintf("%s/document/%s?ext=%s&prefix=document", e.baseURL, documentID, ext)
}

// Extract computes the set of citation links for a batch of chunks. Chunks
// without a document id contribute nothing; duplicate links collapse.
func (e *SourceExtractor) Extract(chunks []model.RetrievalChunk) map[string]struct{} {
	links := make(map[string]struct{})
	for i := range chunks {
		if chunks[i].DocumentID == "" {
			continue
		}
		links[e.Link(chunks[i].DocumentID, chunks[i].DocumentName)] = struct{}{}
	}
	return links
}

// sortedLinks flattens a link set for storage. Only membership is
// contractual; sorting just keeps the JSON output stable.
func sortedLinks(links map[string]struct{}) []string {
	out := make([]string, 0, len(links))
	for link := range links {
		out = append(out, link)
	}
	sort.Strings(out)
	return out
}
