package dialogue

import "support-chatbot-be/pkg/retrieval"

// Kind tags the outcome of a policy decision.
type Kind string

const (
	KindClarify  Kind = "clarify"
	KindAnswer   Kind = "answer"
	KindNotFound Kind = "not_found"
)

// NotFound sub-reasons. NoMatch means retrieval worked but nothing usable
// came back; RetrievalUnavailable means the retriever itself failed.
const (
	ReasonNoMatch              = "no_match"
	ReasonRetrievalUnavailable = "retrieval_unavailable"
)

// Decision is the tagged result of the policy engine. Exactly one of the
// payload fields is meaningful for each kind: Options for Clarify, Candidates
// for Answer (the material synthesis may draw on), Reason for NotFound.
type Decision struct {
	Kind       Kind
	Options    []string
	Candidates []retrieval.Candidate
	Reason     string
}

// Pending describes an unanswered clarifying question: the question that
// triggered it and the options that were offered, in the order offered.
type Pending struct {
	OriginalQuestion string
	Options          []string
}
