package tui

import (
	"fmt"
	"strings"

	"braindrop/internal/service"
	"braindrop/models"
)

type navItemKind int

const (
	navSpecial navItemKind = iota
	navHeader
	navCollection
	navTag
)

// navItem is one row of the navigation pane.
type navItem struct {
	kind  navItemKind
	id    int64
	tag   models.Tag
	title string
	depth int
	count int
}

func (n navItem) selectable() bool {
	return n.kind != navHeader
}

// buildNavigation assembles the navigation rows: the special collections,
// the user's sidebar groups with their collections nested underneath, and
// the tags of the active group.
func buildNavigation(data service.DataService, active models.Raindrops, tagsByCount bool) []navItem {
	items := []navItem{
		specialItem(data, models.CollectionAll),
		specialItem(data, models.CollectionUnsorted),
		specialItem(data, models.CollectionUntagged),
		specialItem(data, models.CollectionBroken),
		specialItem(data, models.CollectionTrash),
	}

	for _, group := range data.User().Groups {
		if group.Hidden {
			continue
		}
		items = append(items, navItem{kind: navHeader, title: group.Title})
		for _, id := range group.Collections {
			items = appendCollectionTree(items, data, id, 0)
		}
	}

	tags := orderedTags(data.TagsOf(active), tagsByCount)
	if len(tags) > 0 {
		items = append(items, navItem{kind: navHeader, title: "Tags"})
		for _, tag := range tags {
			items = append(items, navItem{
				kind:  navTag,
				tag:   tag.Tag,
				title: string(tag.Tag),
				count: tag.Count,
			})
		}
	}

	return items
}

func specialItem(data service.DataService, c models.SpecialCollection) navItem {
	return navItem{
		kind:  navSpecial,
		id:    int64(c),
		title: c.Title(),
		count: data.InCollection(int64(c)).Len(),
	}
}

func appendCollectionTree(items []navItem, data service.DataService, id int64, depth int) []navItem {
	collection, ok := data.Collection(id)
	if !ok {
		return items
	}

	items = append(items, navItem{
		kind:  navCollection,
		id:    collection.ID,
		title: collection.Title,
		depth: depth,
		count: collection.Count,
	})
	for _, child := range data.ChildrenOf(id) {
		items = appendCollectionTree(items, data, child.ID, depth+1)
	}
	return items
}

// renderNavItem draws one navigation row at the given pane width.
func renderNavItem(item navItem, selected bool, width int) string {
	switch item.kind {
	case navHeader:
		return faintStyle.Render(fitText(strings.ToUpper(item.title), width))
	default:
		label := strings.Repeat("  ", item.depth) + item.title
		count := fmt.Sprintf(" %d", item.count)
		line := fitText(label, width-len(count)) + count
		if selected {
			return selectedStyle.Render(line)
		}
		if item.kind == navTag {
			return tagStyle.Render(line)
		}
		return line
	}
}

// pickerCollections is the order the form's collection picker offers:
// unsorted first, the sidebar collections as the navigation shows them,
// the trash last.
func pickerCollections(data service.DataService) []models.Collection {
	out := []models.Collection{models.CollectionUnsorted.AsCollection()}

	var walk func(id int64, depth int)
	walk = func(id int64, depth int) {
		collection, ok := data.Collection(id)
		if !ok {
			return
		}
		out = append(out, collection)
		for _, child := range data.ChildrenOf(id) {
			walk(child.ID, depth+1)
		}
	}
	for _, group := range data.User().Groups {
		for _, id := range group.Collections {
			walk(id, 0)
		}
	}

	return append(out, models.CollectionTrash.AsCollection())
}

// nextSelectable moves idx by step until it lands on a selectable row,
// staying put when there is nothing in that direction.
func nextSelectable(items []navItem, idx, step int) int {
	for i := idx + step; i >= 0 && i < len(items); i += step {
		if items[i].selectable() {
			return i
		}
	}
	return idx
}
