package constant

// Log module tags.
const (
	ModuleChatService     = "CHAT_SERVICE"
	ModuleChatController  = "CHAT_CONTROLLER"
	ModuleIndexingService = "INDEXING_SERVICE"
	ModuleLogConsumer     = "LOG_CONSUMER"
)

// Decision codes persisted with conversation logs.
const (
	DecisionClarify  = "clarify"
	DecisionAnswer   = "answer"
	DecisionNotFound = "not_found"
	DecisionSmall    = "smalltalk"
)
