package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acres-chat/internal/model"
	"acres-chat/internal/service"
)

func TestSourceExtractor_Link(t *testing.T) {
	e := service.NewSourceExtractor("https://papers.example.org/")

	assert.Equal(t,
		"https://papers.example.org/document/d1?ext=pdf&prefix=document",
		e.Link("d1", "paper.pdf"))

	// Extension is everything after the last dot.
	assert.Equal(t,
		"https://papers.example.org/document/d2?ext=gz&prefix=document",
		e.Link("d2", "archive.tar.gz"))

	// No dot means no extension.
	assert.Equal(t,
		"https://papers.example.org/document/d3?ext=&prefix=document",
		e.Link("d3", "README"))
}

func TestSourceExtractor_Extract(t *testing.T) {
	e := service.NewSourceExtractor("https://papers.example.org")

	chunks := []model.RetrievalChunk{
		{ID: "c1", Content: strptr("x"), DocumentID: "d1", DocumentName: "paper.pdf"},
		{ID: "c2", Content: strptr("y"), DocumentID: "d1", DocumentName: "paper.pdf"}, // duplicate collapses
		{ID: "c3", Content: strptr("z"), DocumentID: "", DocumentName: "orphan.pdf"},  // no id, skipped
		{ID: "c4", Content: strptr("w"), DocumentID: "d2", DocumentName: "notes.docx"},
	}

	links := e.Extract(chunks)
	assert.Len(t, links, 2)
	assert.Contains(t, links, "https://papers.example.org/document/d1?ext=pdf&prefix=document")
	assert.Contains(t, links, "https://papers.example.org/document/d2?ext=docx&prefix=document")

	assert.Empty(t, e.Extract(nil))
}
