package cube

// pipPlacement places one pip on a side: the pip shape translated by Anchor.
type pipPlacement struct {
	Name   string
	Anchor Coordinate
}

// catalogData is the authored geometry for one curve order, in local
// coordinates. Dots are listed left to right, top to bottom as drawn on the
// die diagram.
type catalogData struct {
	pip  []Coordinate
	dots map[SideID][]pipPlacement
}

// authored maps curve order to its catalog data.
var authored = map[int]catalogData{
	4: {
		// A 4×4 block with its corners removed.
		pip: []Coordinate{
			{1, 2}, {1, 3},
			{2, 1}, {2, 2}, {2, 3}, {2, 4},
			{3, 1}, {3, 2}, {3, 3}, {3, 4},
			{4, 2}, {4, 3},
		},
		dots: map[SideID][]pipPlacement{
			1: {{"1A", Coordinate{5, 5}}},
			2: {{"2A", Coordinate{0, 10}}, {"2B", Coordinate{10, 0}}},
			3: {{"3A", Coordinate{0, 10}}, {"3B", Coordinate{5, 5}}, {"3C", Coordinate{10, 0}}},
			4: {
				{"4A", Coordinate{0, 0}}, {"4B", Coordinate{10, 0}},
				{"4C", Coordinate{0, 10}}, {"4D", Coordinate{10, 10}},
			},
			5: {
				{"5A", Coordinate{0, 0}}, {"5B", Coordinate{10, 0}},
				{"5C", Coordinate{5, 5}},
				{"5D", Coordinate{0, 10}}, {"5E", Coordinate{10, 10}},
			},
			6: {
				{"6A", Coordinate{0, 0}}, {"6B", Coordinate{0, 5}}, {"6C", Coordinate{0, 10}},
				{"6D", Coordinate{10, 0}}, {"6E", Coordinate{10, 5}}, {"6F", Coordinate{10, 10}},
			},
		},
	},
}
