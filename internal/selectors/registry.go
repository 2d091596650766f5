// X markup shifts often; every semantic field gets an ordered fallback
// chain instead of a single selector. Chains are evaluated first-match-wins
// and can be replaced from config without touching extraction code.

package selectors

// Field names one semantic piece of a post element.
type Field string

const (
	FieldContainer Field = "container"
	FieldText      Field = "text"
	FieldAuthor    Field = "author"
	FieldTimestamp Field = "timestamp"
)

// Registry holds the per-field selector chains. Read-only after setup.
type Registry struct {
	chains map[Field][]string
}

// Default returns a registry with the chains matching current X markup.
func Default() *Registry {
	return &Registry{
		chains: map[Field][]string{
			FieldContainer: {
				`article[data-testid="tweet"]`,
				`div[data-testid="cellInnerDiv"] article`,
				`[role="article"]`,
			},
			FieldText: {
				`div[data-testid="tweetText"]`,
				`div[lang]`,
			},
			FieldAuthor: {
				`a[role="link"]`,
				`div[data-testid="User-Name"] a`,
			},
			FieldTimestamp: {
				`time`,
				`[datetime]`,
			},
		},
	}
}

// Override replaces the chain for field. Empty chains are ignored so a
// partially filled config block cannot wipe out a default.
func (r *Registry) Override(field Field, chain []string) {
	if len(chain) == 0 {
		return
	}
	r.chains[field] = append([]string(nil), chain...)
}

// Chain returns a copy of the chain for field, in fallback order.
func (r *Registry) Chain(field Field) []string {
	return append([]string(nil), r.chains[field]...)
}
