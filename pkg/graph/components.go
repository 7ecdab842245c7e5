package graph

// Components assigns every vertex a connected-component label and returns the
// label array together with the number of distinct components. Labels run from
// 0 to count-1 in order of the first vertex seen in each component. Directed
// graphs are labeled by weak connectivity: edges are followed in both
// directions. An empty graph yields an empty label array and zero components.
func Components(g *Graph) ([]int, int) {
	labels := make([]int, g.NumNodes)
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	queue := make([]int, 0, g.NumNodes)

	for start := 0; start < g.NumNodes; start++ {
		if labels[start] != -1 {
			continue
		}

		// BFS over the undirected closure of the edge set
		labels[start] = count
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			for _, w := range g.Adjacency[v] {
				if labels[w] == -1 {
					labels[w] = count
					queue = append(queue, w)
				}
			}
			for _, w := range g.InAdjacency[v] {
				if labels[w] == -1 {
					labels[w] = count
					queue = append(queue, w)
				}
			}
		}

		count++
	}

	return labels, count
}

// ComponentSizes returns the number of vertices per component label.
func ComponentSizes(labels []int, count int) []int {
	sizes := make([]int, count)
	for _, label := range labels {
		if label >= 0 && label < count {
			sizes[label]++
		}
	}
	return sizes
}
