package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorDoc() (*Document, map[string]*Element) {
	doc := NewDocument()
	els := map[string]*Element{}

	hand := doc.CreateElement("div", "zone")
	hand.SetAttr("id", "hand")
	card := doc.CreateElement("div", "card")
	img := doc.CreateElement("img")
	grave := doc.CreateElement("div", "zone")
	grave.SetAttr("id", "graveyard")
	menu := doc.CreateElement("ul", "card-menu")
	item := doc.CreateElement("li", "card-menu-item")

	doc.Body().AppendChild(hand)
	hand.AppendChild(card)
	card.AppendChild(img)
	doc.Body().AppendChild(grave)
	doc.Body().AppendChild(menu)
	menu.AppendChild(item)

	els["hand"], els["card"], els["img"], els["grave"], els["menu"], els["item"] =
		hand, card, img, grave, menu, item
	return doc, els
}

func TestSelectorMatching(t *testing.T) {
	doc, els := selectorDoc()
	tests := []struct {
		selector string
		want     []*Element
	}{
		{"img", []*Element{els["img"]}},
		{".card", []*Element{els["card"]}},
		{"#hand", []*Element{els["hand"]}},
		{"div.zone", []*Element{els["hand"], els["grave"]}},
		{".card img", []*Element{els["img"]}},
		{"#hand .card img", []*Element{els["img"]}},
		{"#graveyard .card", nil},
		{".card-menu .card-menu-item", []*Element{els["item"]}},
		{".card, .card-menu", []*Element{els["card"], els["menu"]}},
		{"ul#hand", nil},
		{"li.card-menu-item", []*Element{els["item"]}},
	}
	for _, tt := range tests {
		got := doc.FindAll(tt.selector)
		assert.Equal(t, tt.want, got, tt.selector)
	}
}

func TestCompileRejectsMalformedSelectors(t *testing.T) {
	for _, selector := range []string{"", " ", ".", "#", "div.", "a#b#c", "x, "} {
		_, err := Compile(selector)
		assert.Error(t, err, "%q", selector)
	}
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() { MustCompile(".") })
}
