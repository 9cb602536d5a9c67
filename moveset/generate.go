package moveset

import (
	"math/rand"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
)

// GenerateMoves enumerates every structurally distinct move worth trying
// against g's current state: all unordered node pairs for
// Refactor/AddEdge/Reparent, every existing edge for RemoveEdge, every
// existing edge paired with every other destination for ChangeEdge, and
// every (non-leaf node, position, candidate residue) triple for
// SetAminoAcid and FloodFill. Many returned moves will fail Valid —
// callers filter before applying.
func GenerateMoves(g *graph.Graph) []Move {
	ids := g.NodeIDs()
	var moves []Move

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			moves = append(moves, Refactor(ids[i], ids[j]))
		}
	}
	for _, id := range ids {
		moves = append(moves, Remove(id))
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			moves = append(moves, AddEdge(ids[i], ids[j]))
		}
	}
	for _, id := range ids {
		for _, parent := range g.Node(id).Parents {
			moves = append(moves, RemoveEdge(id, parent))
		}
	}
	for _, id := range ids {
		for _, parent := range g.Node(id).Parents {
			for _, newDestination := range ids {
				if newDestination != parent {
					moves = append(moves, ChangeEdge(id, parent, newDestination))
				}
			}
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			moves = append(moves, Reparent(ids[i], ids[j]))
		}
	}
	for index, position := range g.Alignment().Positions {
		for _, acid := range position.Candidates {
			for _, id := range ids {
				if !g.Node(id).Kind.IsLeaf() {
					moves = append(moves, SetAminoAcid(id, alignment.PositionIndex(index), acid))
				}
			}
		}
	}
	for index, position := range g.Alignment().Positions {
		for _, acid := range position.Candidates {
			for _, id := range ids {
				if !g.Node(id).Kind.IsLeaf() {
					moves = append(moves, FloodFill(id, alignment.PositionIndex(index), acid))
				}
			}
		}
	}

	return moves
}

// GenerateMove returns one uniformly-chosen candidate move, the random
// counterpart to GenerateMoves used by the shuffle driver. It may return
// an invalid move; callers retry until Valid succeeds.
func GenerateMove(g *graph.Graph, random *rand.Rand) Move {
	ids := g.NodeIDs()
	switch random.Intn(7) {
	case 0:
		a, b := choosePair(ids, random)
		return Refactor(a, b)
	case 1:
		return Remove(ids[random.Intn(len(ids))])
	case 2:
		a, b := choosePair(ids, random)
		return AddEdge(a, b)
	case 3:
		source := chooseWithParents(g, ids, random)
		parents := g.Node(source).Parents
		return RemoveEdge(source, parents[random.Intn(len(parents))])
	case 4:
		source := chooseWithParents(g, ids, random)
		parents := g.Node(source).Parents
		destination := parents[random.Intn(len(parents))]
		newDestination := ids[random.Intn(len(ids))]
		return ChangeEdge(source, destination, newDestination)
	case 5:
		a, b := choosePair(ids, random)
		return Reparent(a, b)
	default:
		source := chooseNonLeaf(g, ids, random)
		positions := g.Alignment().Positions
		index := random.Intn(len(positions))
		candidates := positions[index].Candidates
		acid := aa.Gap
		if len(candidates) > 0 {
			acid = candidates[random.Intn(len(candidates))]
		}
		return SetAminoAcid(source, alignment.PositionIndex(index), acid)
	}
}

// choosePair picks two distinct elements of ids uniformly at random.
func choosePair(ids []graph.NodeID, random *rand.Rand) (graph.NodeID, graph.NodeID) {
	i := random.Intn(len(ids))
	j := random.Intn(len(ids) - 1)
	if j >= i {
		j++
	}
	return ids[i], ids[j]
}

func chooseWithParents(g *graph.Graph, ids []graph.NodeID, random *rand.Rand) graph.NodeID {
	var withParents []graph.NodeID
	for _, id := range ids {
		if len(g.Node(id).Parents) > 0 {
			withParents = append(withParents, id)
		}
	}
	return withParents[random.Intn(len(withParents))]
}

func chooseNonLeaf(g *graph.Graph, ids []graph.NodeID, random *rand.Rand) graph.NodeID {
	var nonLeaf []graph.NodeID
	for _, id := range ids {
		if !g.Node(id).Kind.IsLeaf() {
			nonLeaf = append(nonLeaf, id)
		}
	}
	return nonLeaf[random.Intn(len(nonLeaf))]
}
