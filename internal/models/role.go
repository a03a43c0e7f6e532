package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/roles"
)

type roleKind int

const (
	roleAbsent roleKind = iota
	roleText
	roleList
	roleOther
)

// RoleValue is a role field that the roster stores either as a single string
// or as a list. Non-text list items are kept as "" so positions survive.
type RoleValue struct {
	kind roleKind
	text string
	list []string
}

// TextRole builds a single-string role value.
func TextRole(s string) RoleValue {
	return RoleValue{kind: roleText, text: s}
}

// ListRole builds a list role value.
func ListRole(items ...string) RoleValue {
	return RoleValue{kind: roleList, list: append([]string{}, items...)}
}

// RoleValueOf converts a decoded document field into a RoleValue.
func RoleValueOf(v any) RoleValue {
	switch val := v.(type) {
	case nil:
		return RoleValue{}
	case string:
		return TextRole(val)
	case []string:
		return ListRole(val...)
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			if s, ok := item.(string); ok {
				items[i] = s
			}
		}
		return RoleValue{kind: roleList, list: items}
	default:
		return RoleValue{kind: roleOther}
	}
}

// Present reports whether the field existed in the document.
func (v RoleValue) Present() bool {
	return v.kind != roleAbsent
}

// Values returns the raw text values in stored order.
func (v RoleValue) Values() []string {
	switch v.kind {
	case roleText:
		return []string{v.text}
	case roleList:
		return append([]string{}, v.list...)
	}
	return nil
}

// Canonical returns the normalized roles in stored order.
func (v RoleValue) Canonical() []string {
	return roles.NormalizeAll(v.Values())
}

// Display returns the text to show for this role: the string itself, or the
// first list element, or "" when neither is usable.
func (v RoleValue) Display() string {
	switch v.kind {
	case roleText:
		return strings.TrimSpace(v.text)
	case roleList:
		if len(v.list) > 0 {
			return strings.TrimSpace(v.list[0])
		}
	}
	return ""
}

// Raw returns a value suitable for document stores: string, []string or nil.
func (v RoleValue) Raw() any {
	switch v.kind {
	case roleText:
		return v.text
	case roleList:
		return append([]string{}, v.list...)
	}
	return nil
}

func (v RoleValue) String() string {
	return fmt.Sprint(v.Raw())
}

func (v RoleValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v *RoleValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode role: %w", err)
	}
	*v = RoleValueOf(raw)
	return nil
}

func (v RoleValue) MarshalYAML() (any, error) {
	return v.Raw(), nil
}

func (v *RoleValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			*v = RoleValue{}
		case "!!str":
			*v = TextRole(node.Value)
		default:
			*v = RoleValue{kind: roleOther}
		}
	case yaml.SequenceNode:
		items := make([]string, len(node.Content))
		for i, item := range node.Content {
			if item.Kind == yaml.ScalarNode && item.ShortTag() == "!!str" {
				items[i] = item.Value
			}
		}
		*v = RoleValue{kind: roleList, list: items}
	default:
		*v = RoleValue{kind: roleOther}
	}
	return nil
}

// ParseRoleJSON decodes a nullable JSON column. A nil or empty column is absent.
func ParseRoleJSON(data []byte) (RoleValue, error) {
	if len(data) == 0 {
		return RoleValue{}, nil
	}
	var v RoleValue
	if err := v.UnmarshalJSON(data); err != nil {
		return RoleValue{}, err
	}
	return v, nil
}

// RoleJSON encodes a role value for a nullable JSON column; absent maps to nil.
func RoleJSON(v RoleValue) (*string, error) {
	if !v.Present() || v.kind == roleOther {
		return nil, nil
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// RoleFromColumn decodes a nullable role column. Text that is not valid JSON
// is taken as a single role string, so hand-edited rows still resolve.
func RoleFromColumn(raw *string) RoleValue {
	if raw == nil {
		return RoleValue{}
	}
	v, err := ParseRoleJSON([]byte(*raw))
	if err != nil {
		return TextRole(*raw)
	}
	return v
}
