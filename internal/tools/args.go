// ABOUTME: Helpers for reading loosely-typed tool arguments
// ABOUTME: JSON numbers arrive as float64; these normalize common shapes

package tools

// Args is the raw argument bag of a tool call.
type Args map[string]any

func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a Args) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

func (a Args) Object(key string) map[string]any {
	m, _ := a[key].(map[string]any)
	return m
}

func (a Args) List(key string) []any {
	l, _ := a[key].([]any)
	return l
}

func (a Args) Strings(key string) []string {
	list, ok := a[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (a Args) Ints(key string) []int {
	list, ok := a[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(list))
	for _, item := range list {
		if n, ok := item.(float64); ok {
			out = append(out, int(n))
		}
	}
	return out
}

// Account returns the per-call account override, or 0 for the default.
func (a Args) Account() int {
	return a.Int("account_id")
}

// Pick copies only the named keys that are present. Used by update handlers
// where absent fields must stay untouched.
func (a Args) Pick(keys ...string) map[string]any {
	out := make(map[string]any)
	for _, key := range keys {
		if v, ok := a[key]; ok {
			out[key] = v
		}
	}
	return out
}

// Rest copies every argument except the named keys. Mirrors handlers that
// forward "everything but the identifiers" as the request body.
func (a Args) Rest(exclude ...string) map[string]any {
	skip := make(map[string]struct{}, len(exclude))
	for _, key := range exclude {
		skip[key] = struct{}{}
	}
	out := make(map[string]any)
	for key, value := range a {
		if _, ok := skip[key]; !ok {
			out[key] = value
		}
	}
	return out
}
