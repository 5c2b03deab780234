package stylesheet

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// checkKeys reports every key of data that Sheet or one of its sections does
// not define, with the closest known key when one is near enough.
func checkKeys(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse style sheet: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	var errs error
	root := doc.Content[0]
	top := yamlKeys(reflect.TypeOf(Sheet{}))
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, value := root.Content[i].Value, root.Content[i+1]
		field, ok := top[name]
		if !ok {
			errs = multierr.Append(errs, unknownKey(name, top))
			continue
		}
		if value.Kind != yaml.MappingNode {
			continue
		}
		keys := yamlKeys(field)
		for j := 0; j+1 < len(value.Content); j += 2 {
			key := value.Content[j].Value
			if _, ok := keys[key]; !ok {
				errs = multierr.Append(errs, unknownKey(name+"."+key, keys))
			}
		}
	}
	return errs
}

// yamlKeys maps the yaml keys of a struct type to their field types.
func yamlKeys(t reflect.Type) map[string]reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	keys := map[string]reflect.Type{}
	if t.Kind() != reflect.Struct {
		return keys
	}
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = f.Type
	}
	return keys
}

func unknownKey(path string, known map[string]reflect.Type) error {
	key := path[strings.LastIndex(path, ".")+1:]
	if s := suggest(key, known); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, path, s)
	}
	return fmt.Errorf("%w %q", ErrUnknownKey, path)
}

// suggest returns the known key closest to key, or "" when none is within
// a third of the key's length (at least two edits).
func suggest(key string, known map[string]reflect.Type) string {
	best, bestDist := "", 0
	lower := strings.ToLower(key)
	for k := range known {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(k))
		if best == "" || d < bestDist || (d == bestDist && k < best) {
			best, bestDist = k, d
		}
	}
	if best == "" || bestDist > max(2, len(key)/3) {
		return ""
	}
	return best
}
