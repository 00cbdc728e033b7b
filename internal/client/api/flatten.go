package api

import (
	"fmt"
	"sort"
)

// FlattenErrors turns a serializer error body into one line per problem.
//
//	{"user": {"email": ["already exists"]}, "roll_no": ["invalid"]}
//
// becomes
//
//	["roll_no: invalid", "user.email: already exists"]
//
// Keys are visited in sorted order. A bare string body yields itself and a
// bare list yields its items.
func FlattenErrors(body any) []string {
	var out []string
	flatten(body, "", &out)
	return out
}

func flatten(v any, path string, out *[]string) {
	switch t := v.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := k
			if path != "" {
				p = path + "." + k
			}
			flatten(t[k], p, out)
		}
	case []any:
		for _, item := range t {
			if _, nested := item.(map[string]any); nested {
				flatten(item, path, out)
				continue
			}
			emit(item, path, out)
		}
	default:
		emit(t, path, out)
	}
}

func emit(v any, path string, out *[]string) {
	s := fmt.Sprint(v)
	if v == nil || s == "" {
		return
	}
	if path == "" {
		*out = append(*out, s)
		return
	}
	*out = append(*out, path+": "+s)
}
