package sections

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
)

// identified is satisfied by every list-valued section item.
type identified interface {
	ItemID() string
}

// updateItem returns a copy of items where the item with the given id has been
// passed through fn. Order is preserved; an unknown id returns an unchanged copy.
func updateItem[T identified](items []T, id string, fn func(*T) error) ([]T, error) {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ItemID() != id {
			continue
		}
		if err := fn(&out[i]); err != nil {
			return items, err
		}
		break
	}
	return out, nil
}

// HasItem reports whether the list section holds an item carrying id.
// Sections without items return an *UnknownSectionError.
func HasItem(r types.Resume, section types.Section, id string) (bool, error) {
	switch section {
	case types.SectionExperience:
		return containsItem(r.WorkExperience, id), nil
	case types.SectionEducation:
		return containsItem(r.Education, id), nil
	case types.SectionProjects:
		return containsItem(r.Projects, id), nil
	}
	return false, &UnknownSectionError{Section: string(section)}
}

func containsItem[T identified](items []T, id string) bool {
	return slices.ContainsFunc(items, func(item T) bool { return item.ItemID() == id })
}

// removeItem returns a copy of items without the item carrying id.
func removeItem[T identified](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.ItemID() != id {
			out = append(out, item)
		}
	}
	return out
}

// asString accepts only string values.
func asString(section types.Section, field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &FieldError{Section: section, Field: field, Message: "expected a string"}
	}
	return s, nil
}

// asBool accepts a bool or a string strconv can parse.
func asBool(section types.Section, field string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, &FieldError{Section: section, Field: field, Message: "expected a boolean"}
		}
		return b, nil
	}
	return false, &FieldError{Section: section, Field: field, Message: "expected a boolean"}
}

// asList accepts a []string, a []any of strings (decoded JSON), or a string that
// is split on sep.
func asList(section types.Section, field string, value any, sep string) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &FieldError{Section: section, Field: field, Message: "expected a list of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return strings.Split(v, sep), nil
	}
	return nil, &FieldError{Section: section, Field: field, Message: "expected a list of strings"}
}
