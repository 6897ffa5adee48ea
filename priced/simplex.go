// File: simplex.go
// Role: the dual network simplex that computes the infimum of a rate
// vector over a zone's minimal constraint graph. Arc costs are the
// decoded integer value of each difference constraint (strictness is
// dropped: the infimum of a rate function over a zone is attained at a
// corner of the zone's closure, and that corner's coordinates are plain
// integers, not bound.Bound's doubled encoding).

package priced

import (
	"math"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/mingraph"
)

var infinityValue = bound.Infinity.Value()

type simplexNode struct {
	pred      int
	depth     int
	thread    int
	inbound   bool
	flow      int32
	potential int32
}

type arc struct{ i, j int }

func valueAt(d *dbm.DBM, i, j int) int32 { return d.At(i, j).Value() }

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func supplyDemand(rates []int32, i int) int32 { return -rates[i] }

func essentialArcs(d *dbm.DBM) []arc {
	bm, count := mingraph.Analyze(d)
	dim := d.Dim()
	arcs := make([]arc, 0, count)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i != j && bm.Get(i, j) {
				arcs = append(arcs, arc{i, j})
			}
		}
	}
	return arcs
}

// findInitialSpanningTreeSolution builds the star spanning tree rooted at
// clock 0, using artificial arcs for every other clock in the direction
// that matches its supply/demand sign, with potentials set from the
// zone's own bound against the reference clock.
func findInitialSpanningTreeSolution(d *dbm.DBM, rates []int32, tree []simplexNode) {
	dim := len(tree)
	tree[0] = simplexNode{pred: -1, depth: 0, thread: 1 % dim, inbound: false, flow: -1, potential: 0}
	for i := 1; i < dim; i++ {
		n := simplexNode{pred: 0, depth: 1, thread: (i + 1) % dim, flow: abs32(rates[i])}
		if supplyDemand(rates, i) < 0 {
			n.inbound = true
			n.potential = -valueAt(d, 0, i)
		} else {
			n.inbound = false
			n.potential = valueAt(d, i, 0)
		}
		tree[i] = n
	}
}

// updatePotentials adjusts every node in the subtree rooted at leave
// (found via the preorder thread) by change, leave itself included.
func updatePotentials(tree []simplexNode, leave int, change int32) {
	depthLimit := tree[leave].depth
	z := leave
	for {
		tree[z].potential += change
		z = tree[z].thread
		if tree[z].depth <= depthLimit {
			break
		}
	}
}

// findLastNodeBeforeExclude walks the preorder thread from node until it
// is about to reach exclude, returning the node just before it.
func findLastNodeBeforeExclude(tree []simplexNode, node, exclude int) int {
	var i int
	for {
		i = node
		node = tree[node].thread
		if node == exclude {
			break
		}
	}
	return i
}

// findLastNodeBeforeDepth walks the preorder thread from node until the
// next node's depth is no greater than depth, returning the node just
// before that point.
func findLastNodeBeforeDepth(tree []simplexNode, node, depth int) int {
	var i int
	for {
		i = node
		node = tree[node].thread
		if tree[node].depth <= depth {
			break
		}
	}
	return i
}

// findNthPredecessor returns the n'th ancestor of node; node itself if n
// is zero or negative.
func findNthPredecessor(tree []simplexNode, node, n int) int {
	for n > 0 {
		node = tree[node].pred
		n--
	}
	return node
}

func isPredecessorOf(tree []simplexNode, n, m int) bool {
	return n == findNthPredecessor(tree, m, tree[m].depth-tree[n].depth)
}

// updateNonRootSubtree splices the subtree rooted at nonRootNode into the
// tree rooted at rootNode after the leaving arc is removed, updating
// pred/thread/depth/inbound/flow for every affected node.
func updateNonRootSubtree(tree []simplexNode, rootNode, nonRootNode, leave int, sourceInRootSubtree bool, flow int32) {
	pointToLeave := findLastNodeBeforeExclude(tree, tree[leave].pred, leave)
	lastOut := findLastNodeBeforeDepth(tree, nonRootNode, tree[nonRootNode].depth)
	preorderOut := tree[lastOut].thread

	i := nonRootNode
	for i != leave {
		prev := i
		i = tree[i].pred
		tree[lastOut].thread = i

		lastOut = findLastNodeBeforeExclude(tree, i, prev)

		if i == tree[preorderOut].pred {
			tree[lastOut].thread = preorderOut
			lastOut = findLastNodeBeforeDepth(tree, preorderOut, tree[i].depth)
			preorderOut = tree[lastOut].thread
		}
	}

	if pointToLeave == rootNode {
		tree[rootNode].thread = nonRootNode
		tree[lastOut].thread = preorderOut
	} else {
		tree[lastOut].thread = tree[rootNode].thread
		tree[rootNode].thread = nonRootNode
		tree[pointToLeave].thread = preorderOut
	}

	tmpPred1, tmpFlow1, tmpInbound1 := rootNode, flow, !sourceInRootSubtree
	newI := nonRootNode
	for {
		i = newI
		tmpPred2, tmpFlow2, tmpInbound2 := tmpPred1, tmpFlow1, tmpInbound1
		newI = tree[i].pred
		tmpPred1, tmpFlow1, tmpInbound1 = i, tree[i].flow, tree[i].inbound
		tree[i].pred = tmpPred2
		tree[i].flow = tmpFlow2
		tree[i].inbound = !tmpInbound2
		if i == leave {
			break
		}
	}

	stop := tree[lastOut].thread
	i = nonRootNode
	for {
		tree[i].depth = tree[tree[i].pred].depth + 1
		i = tree[i].thread
		if i == stop {
			break
		}
	}
}

// updateFlowInCycle augments flow by flowToAugment in the direction of
// the entering arc (k,l) around the cycle it forms with the tree.
func updateFlowInCycle(tree []simplexNode, k, l, root int, flowToAugment int32) {
	if flowToAugment <= 0 {
		return
	}
	for k != root {
		if tree[k].inbound {
			tree[k].flow += flowToAugment
		} else {
			tree[k].flow -= flowToAugment
		}
		k = tree[k].pred
	}
	for l != root {
		if tree[l].inbound {
			tree[l].flow -= flowToAugment
		} else {
			tree[l].flow += flowToAugment
		}
		l = tree[l].pred
	}
}

func updateSpanningTree(tree []simplexNode, k, l, leave, root int, costEnter int32) {
	reducedCostEnter := costEnter - tree[k].potential + tree[l].potential
	flowToAugment := tree[leave].flow
	updateFlowInCycle(tree, k, l, root, flowToAugment)
	if !isPredecessorOf(tree, leave, k) {
		updatePotentials(tree, leave, -reducedCostEnter)
		updateNonRootSubtree(tree, k, l, leave, true, flowToAugment)
	} else {
		updatePotentials(tree, leave, reducedCostEnter)
		updateNonRootSubtree(tree, l, k, leave, false, flowToAugment)
	}
}

// enteringArcDanzig picks the arc with the most negative reduced cost,
// reporting ok=false when every reduced cost is non-negative (optimal).
func enteringArcDanzig(arcs []arc, tree []simplexNode, d *dbm.DBM) (int, bool) {
	best := -1
	lowest := int32(0)
	for idx, a := range arcs {
		reduced := valueAt(d, a.i, a.j) - tree[a.i].potential + tree[a.j].potential
		if reduced < lowest {
			lowest = reduced
			best = idx
		}
	}
	return best, best >= 0
}

func discoverCycleRoot(tree []simplexNode, k, l int) int {
	diff := tree[k].depth - tree[l].depth
	k = findNthPredecessor(tree, k, diff)
	l = findNthPredecessor(tree, l, -diff)
	for k != l {
		k = tree[k].pred
		l = tree[l].pred
	}
	return k
}

// findLeavingArc returns the node mentioning the arc, oppositely directed
// of (k,l), with the smallest flow on the path from k and l to root,
// breaking ties toward the arc furthest from root (strong feasibility).
func findLeavingArc(tree []simplexNode, k, l, root int) int {
	smallestFlow := int32(math.MaxInt32)
	smallestFlowNode := -1
	for k != root {
		if !tree[k].inbound && tree[k].flow < smallestFlow {
			smallestFlow = tree[k].flow
			smallestFlowNode = k
		}
		k = tree[k].pred
	}
	for l != root {
		if tree[l].inbound && tree[l].flow <= smallestFlow {
			smallestFlow = tree[l].flow
			smallestFlowNode = l
		}
		l = tree[l].pred
	}
	return smallestFlowNode
}

// testAndRemoveArtificialArcs shifts potentials so that any remaining
// zero-flow artificial arc no longer distorts them, without changing the
// solution's feasibility.
func testAndRemoveArtificialArcs(d *dbm.DBM, tree []simplexNode) {
	dim := len(tree)
	for i := 1; i < dim; i++ {
		if tree[i].potential != infinityValue || tree[i].pred != 0 || tree[i].flow != 0 {
			continue
		}
		tree[i].inbound = true
		minPotential := infinityValue + valueAt(d, 0, i)
		tmp := tree[i].thread
		for tree[tmp].depth > tree[i].depth {
			if tree[tmp].potential < minPotential {
				minPotential = tree[tmp].potential
			}
			tmp = tree[tmp].thread
		}
		tmp = i
		for {
			tree[tmp].potential -= minPotential
			tmp = tree[tmp].thread
			if tree[tmp].depth <= tree[i].depth {
				break
			}
		}
	}
}

// assertTreeInvariants re-checks, for debugging and tests, the properties
// the algorithm must maintain at every step: flow conservation, zero
// reduced cost on every tree arc, depth agreement with pred, and a
// preorder thread that visits every node exactly once and returns to the
// root.
func assertTreeInvariants(d *dbm.DBM, rates []int32, tree []simplexNode) bool {
	dim := len(tree)
	sum := make([]int32, dim)
	for i := 1; i < dim; i++ {
		sum[0] -= supplyDemand(rates, i)
		sum[i] = supplyDemand(rates, i)
	}
	for i := 1; i < dim; i++ {
		p := tree[i].pred
		if tree[i].inbound {
			sum[i] += tree[i].flow
			sum[p] -= tree[i].flow
		} else {
			sum[p] += tree[i].flow
			sum[i] -= tree[i].flow
		}
	}
	for i := 0; i < dim; i++ {
		if sum[i] != 0 {
			return false
		}
	}

	for i := 1; i < dim; i++ {
		p := tree[i].pred
		if tree[i].potential == infinityValue && p == 0 {
			continue
		}
		var reduced int32
		if tree[i].inbound {
			reduced = valueAt(d, p, i) - tree[p].potential + tree[i].potential
		} else {
			reduced = valueAt(d, i, p) + tree[p].potential - tree[i].potential
		}
		if reduced != 0 {
			return false
		}
	}

	for i := 1; i < dim; i++ {
		if tree[tree[i].pred].depth+1 != tree[i].depth {
			return false
		}
	}

	visited := make([]bool, dim)
	visited[0] = true
	j := tree[0].thread
	for i := 1; i < dim; i++ {
		visited[j] = true
		j = tree[j].thread
	}
	if j != 0 {
		return false
	}
	for _, v := range visited {
		if !v {
			return false
		}
	}
	return true
}

// infimumNetSimplex runs the dual network simplex to completion and
// returns the final tree, from which the caller reads potentials and
// artificial-arc flows.
func infimumNetSimplex(d *dbm.DBM, rates []int32) []simplexNode {
	dim := d.Dim()
	tree := make([]simplexNode, dim)
	arcs := essentialArcs(d)

	findInitialSpanningTreeSolution(d, rates, tree)

	idx, ok := enteringArcDanzig(arcs, tree, d)
	for ok {
		k, l := arcs[idx].i, arcs[idx].j
		root := discoverCycleRoot(tree, k, l)
		leave := findLeavingArc(tree, k, l, root)
		updateSpanningTree(tree, k, l, leave, root, valueAt(d, k, l))
		idx, ok = enteringArcDanzig(arcs, tree, d)
	}

	testAndRemoveArtificialArcs(d, tree)
	return tree
}
