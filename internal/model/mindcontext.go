package model

// Context is a categorical situational tag attached to an entry.
type Context string

// Known contexts.
const (
	ContextWork          Context = "work"
	ContextFamily        Context = "family"
	ContextFriends       Context = "friends"
	ContextHealth        Context = "health"
	ContextMeals         Context = "meals"
	ContextTasks         Context = "tasks"
	ContextIdentity      Context = "identity"
	ContextFinances      Context = "finances"
	ContextRelationships Context = "relationships"
	ContextTravel        Context = "travel"
)

// AllContexts lists every context in presentation order.
var AllContexts = []Context{
	ContextWork,
	ContextFamily,
	ContextFriends,
	ContextHealth,
	ContextMeals,
	ContextTasks,
	ContextIdentity,
	ContextFinances,
	ContextRelationships,
	ContextTravel,
}

// Valid reports whether c is a known context.
func (c Context) Valid() bool {
	for _, known := range AllContexts {
		if c == known {
			return true
		}
	}
	return false
}
