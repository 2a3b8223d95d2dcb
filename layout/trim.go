// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

// Trim returns a copy of b without the fields for which drop returns true.
// drop sees every block field and structure member together with the name
// of its owner (the block or structure name).
//
// Structures left without members are removed, recursively, together with
// every field whose type is that structure or an array of it. b is not
// modified.
func Trim(b *Block, drop func(owner string, f Field) bool) *Block {
	t := &trimmer{drop: drop, done: make(map[*Struct]*Struct)}
	out := *b
	out.Fields = t.fields(b.Name, b.Fields)
	return &out
}

// Prune removes empty structures and the fields using them.
func Prune(b *Block) *Block {
	return Trim(b, func(string, Field) bool { return false })
}

type trimmer struct {
	drop func(owner string, f Field) bool
	done map[*Struct]*Struct // trimmed copies; nil when the structure is gone
}

func (t *trimmer) fields(owner string, in []Field) []Field {
	var out []Field
	for _, f := range in {
		if t.drop(owner, f) {
			continue
		}
		if f.Struct != nil {
			s := t.structure(f.Struct)
			if s == nil {
				continue
			}
			f.Struct = s
		}
		out = append(out, f)
	}
	return out
}

func (t *trimmer) structure(s *Struct) *Struct {
	if c, ok := t.done[s]; ok {
		return c
	}
	members := t.fields(s.Name, s.Members)
	var c *Struct
	if len(members) > 0 {
		c = &Struct{Name: s.Name, Members: members}
	}
	t.done[s] = c
	return c
}
