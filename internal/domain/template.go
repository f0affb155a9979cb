package domain

import (
	"regexp"
	"strings"
)

// variablePattern matches a non-nested {{...}} placeholder span.
var variablePattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// ExtractVariables scans content for `{{name}}` placeholders and returns an
// ordered list of variables, unique by trimmed name. For each name that is
// present in existing, the previously stored value is carried over; new
// names get an empty value and names no longer present are dropped.
func ExtractVariables(content string, existing []Variable) []Variable {
	prior := make(map[string]string, len(existing))
	for _, v := range existing {
		prior[v.Name] = v.Value
	}

	matches := variablePattern.FindAllStringSubmatch(content, -1)

	variables := make([]Variable, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		variables = append(variables, Variable{Name: name, Value: prior[name]})
	}

	return variables
}
