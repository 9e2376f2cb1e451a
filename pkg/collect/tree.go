package collect

import (
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if n.children == nil {
		n.children = make(map[string]*treeNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name}
		n.children[name] = c
	}
	return c
}

func (n *treeNode) isDir() bool { return len(n.children) > 0 }

// GenerateTree draws the given files as a tree rooted at root. Paths outside
// root are listed by their full path at the top level.
func GenerateTree(root string, paths []string) string {
	top := &treeNode{}
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			top.child(filepath.ToSlash(p))
			continue
		}
		node := top
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			node = node.child(part)
		}
	}

	var b strings.Builder
	b.WriteString(filepath.ToSlash(root) + "/\n")
	writeTree(&b, top, "")
	return strings.TrimSuffix(b.String(), "\n")
}

// writeTree lists directories first, then files, alphabetically.
func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		entries = append(entries, c)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, e := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if e.isDir() {
			b.WriteString(prefix + connector + e.name + "/\n")
			writeTree(b, e, prefix+extension)
		} else {
			b.WriteString(prefix + connector + e.name + "\n")
		}
	}
}
