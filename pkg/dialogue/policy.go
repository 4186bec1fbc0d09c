package dialogue

import (
	"strings"

	"support-chatbot-be/pkg/retrieval"
	"support-chatbot-be/pkg/session"
)

// Engine is the clarify-or-answer decision core. Decide is deterministic:
// the same question, history and candidates always yield the same decision,
// so the policy is testable without any generation model.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Decide classifies the retrieved candidates against the question and
// history into one of three outcomes:
//
//   - Clarify when two or more distinct labels are relevant and neither the
//     question nor a prior clarifying exchange pins one down
//   - Answer when exactly one option is in play, carrying the candidates the
//     synthesizer may use
//   - NotFound when nothing usable was retrieved
func (e *Engine) Decide(question string, history []session.Turn, candidates []retrieval.Candidate) Decision {
	pending := PendingFromHistory(history)
	_, pinned := ResolveQuestion(question, pending)

	grouped := groupCandidates(candidates)
	if len(grouped) == 0 {
		return Decision{Kind: KindNotFound, Reason: ReasonNoMatch}
	}

	labels := distinctLabels(grouped)

	if pinned == "" {
		pinned = pinnedByQuestion(question, labels)
	}

	if pinned != "" {
		filtered := filterByLabel(grouped, pinned)
		if len(filtered) == 0 {
			return Decision{Kind: KindNotFound, Reason: ReasonNoMatch}
		}
		return Decision{Kind: KindAnswer, Candidates: filtered}
	}

	if len(labels) >= 2 {
		return Decision{Kind: KindClarify, Options: labels}
	}

	return Decision{Kind: KindAnswer, Candidates: grouped}
}

// ResolveQuestion combines a pending clarification with the user's reply.
// When the reply selects one of the offered options, the returned question is
// the original ambiguous question plus the selection, and the selected label
// is returned so the decision step answers instead of re-clarifying. With no
// pending clarification, or a reply that selects nothing, the question passes
// through unchanged.
func ResolveQuestion(question string, pending *Pending) (string, string) {
	if pending == nil {
		return question, ""
	}
	selected := matchOption(question, pending.Options)
	if selected == "" {
		return question, ""
	}
	return pending.OriginalQuestion + " " + selected, selected
}

// matchOption finds the single option the reply refers to. An exact match
// (ignoring case and punctuation) wins; otherwise a reply mentioning exactly
// one option counts as selecting it. Mentioning several selects nothing.
func matchOption(reply string, options []string) string {
	normReply := normalize(reply)
	if normReply == "" {
		return ""
	}

	for _, opt := range options {
		if normalize(opt) == normReply {
			return opt
		}
	}

	var mentioned []string
	for _, opt := range options {
		if strings.Contains(normReply, normalize(opt)) {
			mentioned = append(mentioned, opt)
		}
	}
	if len(mentioned) == 1 {
		return mentioned[0]
	}
	return ""
}

// pinnedByQuestion reports the label the question itself is specific to, if
// it names exactly one of them.
func pinnedByQuestion(question string, labels []string) string {
	normQ := normalize(question)
	var mentioned []string
	for _, label := range labels {
		if strings.Contains(normQ, normalize(label)) {
			mentioned = append(mentioned, label)
		}
	}
	if len(mentioned) == 1 {
		return mentioned[0]
	}
	return ""
}

// groupCandidates drops near-duplicate snippets while preserving retrieval
// order. Two candidates are duplicates when they share a label and their
// normalized snippets match.
func groupCandidates(candidates []retrieval.Candidate) []retrieval.Candidate {
	seen := make(map[string]bool)
	kept := make([]retrieval.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Snippet) == "" {
			continue
		}
		key := normalize(c.Label) + "\x00" + normalize(c.Snippet)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, c)
	}
	return kept
}

// distinctLabels lists labels by first appearance, comparing case
// insensitively so "Outlook" and "outlook" are one option.
func distinctLabels(candidates []retrieval.Candidate) []string {
	seen := make(map[string]bool)
	labels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Label) == "" {
			continue
		}
		key := normalize(c.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		labels = append(labels, c.Label)
	}
	return labels
}

func filterByLabel(candidates []retrieval.Candidate, label string) []retrieval.Candidate {
	normLabel := normalize(label)
	var filtered []retrieval.Candidate
	for _, c := range candidates {
		if normalize(c.Label) == normLabel {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// normalize lowercases and strips punctuation so label matching tolerates
// replies like "Outlook." or "the webmail one".
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r > 127:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
