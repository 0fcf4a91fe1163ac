// Package scenedoc decodes the JSON scene-document wire format into a tree
// of SceneNodes. Keys may arrive in either camelCase or snake_case; Decode
// normalizes both onto the canonical camelCase form before anything else
// looks at the tree.
package scenedoc

import (
	"encoding/json"
	"fmt"
)

// SceneNode is one node of the decoded scene tree. Style is left as a raw
// map so the compositor's style resolver can pick out exactly the keys it
// understands without this package needing its own copy of every style
// field.
type SceneNode struct {
	Tag      string
	Text     string
	Src      string
	D        string
	Style    map[string]any
	Children []*SceneNode
	Mask     *SceneNode
}

// wireNode mirrors the JSON shape after key normalization; Style stays a
// raw map since StyleConfig is "an open record of optional properties"
// per the data model, not a fixed struct.
type wireNode struct {
	Tag      string           `json:"tag"`
	Text     string           `json:"text"`
	Src      string           `json:"src"`
	D        string           `json:"d"`
	Style    map[string]any   `json:"style"`
	Children []json.RawMessage `json:"children"`
	Mask     json.RawMessage  `json:"mask"`
}

// Decode parses a JSON scene document into a SceneNode tree.
func Decode(data []byte) (*SceneNode, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scenedoc: %w", err)
	}
	normalized := normalizeKeys(raw)
	out, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("scenedoc: %w", err)
	}
	return decodeNode(out)
}

func decodeNode(data []byte) (*SceneNode, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("scenedoc: %w", err)
	}

	n := &SceneNode{
		Tag:   w.Tag,
		Text:  w.Text,
		Src:   w.Src,
		D:     w.D,
		Style: w.Style,
	}

	for _, raw := range w.Children {
		child, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	if len(w.Mask) > 0 && string(w.Mask) != "null" {
		mask, err := decodeNode(w.Mask)
		if err != nil {
			return nil, err
		}
		n.Mask = mask
	}

	return n, nil
}
