package cube

// conn4 lists orthogonal neighbour offsets: N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// components splits cells into 4-connected groups.
// Each group lists cells in BFS discovery order; groups appear in the order
// of their first cell in the input.
//
// Time:   O(k·4).
// Memory: O(k) for the membership index and output.
func components(cells []Coordinate) [][]Coordinate {
	member := make(map[Coordinate]bool, len(cells))
	for _, c := range cells {
		member[c] = true
	}
	seen := make(map[Coordinate]bool, len(cells))
	var comps [][]Coordinate

	for _, start := range cells {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []Coordinate{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range conn4 {
				v := Coordinate{X: u.X + d[0], Y: u.Y + d[1]}
				if !member[v] || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
