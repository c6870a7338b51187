package categories

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Class is the result of looking up a provider tag.
type Class int

const (
	// Unmapped tags carry no category information.
	Unmapped Class = iota
	// Direct tags resolve to a single category.
	Direct
	// Video tags need the release title to tell TV from movies.
	Video
)

const videoMarker = "video"

//go:embed mapping.yml
var mappingSource []byte

type mappingFile struct {
	Groups     map[string]int    `yaml:"groups"`
	Extensions map[string]string `yaml:"extensions"`
}

type tagTable struct {
	groups     map[string]Category
	extensions map[string]Category
	video      map[string]struct{}
}

// The table is built once and never written to afterwards.
var table = mustLoadTable(mappingSource)

// VideoCategories are the categories a video tag can be resolved to.
var VideoCategories = []Category{
	CategoryMoviesSD, CategoryMoviesHD, CategoryMoviesUHD,
	CategoryTVSD, CategoryTVHD, CategoryTVUHD,
}

func mustLoadTable(src []byte) *tagTable {
	t, err := loadTable(src)
	if err != nil {
		panic(err)
	}
	return t
}

func loadTable(src []byte) (*tagTable, error) {
	var file mappingFile
	if err := yaml.Unmarshal(src, &file); err != nil {
		return nil, fmt.Errorf("couldn't parse category mapping: %v", err)
	}
	t := &tagTable{
		groups:     map[string]Category{},
		extensions: map[string]Category{},
		video:      map[string]struct{}{},
	}
	for group, id := range file.Groups {
		cat, ok := AllCategories[id]
		if !ok {
			return nil, fmt.Errorf("group %q maps to unknown category %d", group, id)
		}
		t.groups[normalizeTag(group)] = *cat
	}
	for ext, value := range file.Extensions {
		ext = normalizeExtension(ext)
		if value == videoMarker {
			t.video[ext] = struct{}{}
			continue
		}
		id, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("extension %q has invalid category %q", ext, value)
		}
		cat, ok := AllCategories[id]
		if !ok {
			return nil, fmt.Errorf("extension %q maps to unknown category %d", ext, id)
		}
		t.extensions[ext] = *cat
	}
	return t, nil
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func normalizeExtension(ext string) string {
	return strings.TrimPrefix(normalizeTag(ext), ".")
}

// ForGroup resolves a newsgroup name.
func ForGroup(group string) (Category, bool) {
	cat, ok := table.groups[normalizeTag(group)]
	return cat, ok
}

// ForExtension resolves a file extension, with or without the leading dot.
func ForExtension(ext string) (Category, Class) {
	ext = normalizeExtension(ext)
	if cat, ok := table.extensions[ext]; ok {
		return cat, Direct
	}
	if _, ok := table.video[ext]; ok {
		return Category{}, Video
	}
	return Category{}, Unmapped
}

// Producible returns every category a result can be assigned to, including the fallback.
func Producible() Categories {
	cats := Categories{}
	add := func(c Category) {
		cx := c
		cats[c.ID] = &cx
	}
	for _, c := range table.groups {
		add(c)
	}
	for _, c := range table.extensions {
		add(c)
	}
	for _, c := range VideoCategories {
		add(c)
	}
	add(CategoryOther)
	return cats
}
