package setup

import (
	"reflect"
	"testing"
)

func TestLayoutParser(t *testing.T) {
	parser := NewLayoutParser()

	tests := []struct {
		text   string
		layout *Layout
	}{
		{
			text: `hand:
			"Dragon Whelp" dragon_whelp.jpg`,
			layout: &Layout{
				Sections: []*Section{
					{
						Zone: "hand",
						Cards: []*Entry{
							{Name: "Dragon Whelp", Image: "dragon_whelp.jpg"},
						},
					},
				},
			},
		},
		{
			text: `creatures:
			"Shivan Dragon" shivan_dragon.jpg tapped
			"Llanowar Elves" llanowar_elves.jpg`,
			layout: &Layout{
				Sections: []*Section{
					{
						Zone: "creatures",
						Cards: []*Entry{
							{Name: "Shivan Dragon", Image: "shivan_dragon.jpg", Tapped: true},
							{Name: "Llanowar Elves", Image: "llanowar_elves.jpg"},
						},
					},
				},
			},
		},
		{
			text: `# starting board
			lands:
			"Island" island.jpg
			graveyard:
			hand:
			"Counterspell" counterspell.jpg`,
			layout: &Layout{
				Sections: []*Section{
					{
						Zone: "lands",
						Cards: []*Entry{
							{Name: "Island", Image: "island.jpg"},
						},
					},
					{Zone: "graveyard"},
					{
						Zone: "hand",
						Cards: []*Entry{
							{Name: "Counterspell", Image: "counterspell.jpg"},
						},
					},
				},
			},
		},
	}

	for _, test := range tests {
		layout, err := parser.Parse(test.text)
		if err != nil {
			t.Errorf("Error parsing layout: %v", err)
			continue
		}
		if !reflect.DeepEqual(layout, test.layout) {
			t.Errorf("Expected %v, got %v", test.layout, layout)
		}
	}
}

func TestLayoutParserRejectsGarbage(t *testing.T) {
	parser := NewLayoutParser()
	for _, text := range []string{
		`"Island" island.jpg`, // entry before any zone
		`hand "Island" island.jpg`,
	} {
		if _, err := parser.Parse(text); err == nil {
			t.Errorf("Expected parse error for %q", text)
		}
	}
}

func TestBuildDocument(t *testing.T) {
	parser := NewLayoutParser()
	layout, err := parser.Parse(`hand:
	"Dragon Whelp" dragon_whelp.jpg
	creatures:
	"Llanowar Elves" llanowar_elves.jpg tapped`)
	if err != nil {
		t.Fatalf("Error parsing layout: %v", err)
	}
	doc, err := layout.Build()
	if err != nil {
		t.Fatalf("Error building document: %v", err)
	}

	preview := doc.GetElementByID("preview")
	if preview == nil || preview.Style("display") != "none" {
		t.Fatalf("Preview slot missing or visible")
	}
	for _, id := range []string{"hand", "creatures", "lands", "enchantments", "graveyard"} {
		if doc.GetElementByID(id) == nil {
			t.Fatalf("Zone container %q missing", id)
		}
	}

	cards := doc.FindAll("#hand .card")
	if len(cards) != 1 {
		t.Fatalf("Hand does not contain card")
	}
	if cards[0].Attr("name") != "Dragon Whelp" {
		t.Errorf("Expected Dragon Whelp, got %v", cards[0].Attr("name"))
	}
	imgs := doc.FindAll("#hand .card img")
	if len(imgs) != 1 || imgs[0].Attr("src") != "dragon_whelp.jpg" {
		t.Errorf("Hand card image missing or wrong source")
	}

	elves := doc.FindAll("#creatures .card")
	if len(elves) != 1 || !elves[0].HasClass("tapped") {
		t.Errorf("Creature should start tapped")
	}
}

func TestBuildRejectsUnknownZone(t *testing.T) {
	layout := &Layout{Sections: []*Section{{Zone: "exile"}}}
	if _, err := layout.Build(); err == nil {
		t.Errorf("Expected error for unknown zone")
	}
}
