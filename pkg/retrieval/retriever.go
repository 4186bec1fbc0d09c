package retrieval

import "context"

// Candidate is one retrieved knowledge snippet. Label names the document
// family the snippet belongs to (e.g. a product or printer model), Snippet is
// the chunk text and Score the similarity in [0, 1].
type Candidate struct {
	Label   string
	Snippet string
	Score   float64
}

// Retriever finds the candidates most relevant to a query, best first.
// Implementations return an error only for infrastructure failures; a query
// with no relevant material yields an empty slice.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]Candidate, error)
}
