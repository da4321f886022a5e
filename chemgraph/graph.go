/*
 * graph.go, part of rotalib.
 *
 * Copyright 2024 Raul Mera <rmeraaatacademicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemgraph wraps an atom store's bond table as a gonum graph so
// downstream-of-a-bond partitioning reuses gonum/graph/traverse instead of a
// hand-rolled walk.
package chemgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	rotalib "github.com/rmera/rotalib"
)

// Node wraps an atom id so it satisfies graph.Node.
type Node int64

func (n Node) ID() int64 { return int64(n) }

// Topology is a gonum.org/v1/gonum/graph.Graph over an AtomStore's covalent
// connection table, with unit edge weights: the graph purpose here is
// purely traversal, not path-energy accounting.
type Topology struct {
	*simple.UndirectedGraph
}

// FromStore builds the bond graph of store: one node per atom, one
// undirected edge per (i,j) pair present in Atom.Connections.
func FromStore(store *rotalib.AtomStore) *Topology {
	g := simple.NewUndirectedGraph()
	for _, a := range store.All() {
		g.AddNode(Node(a.ID))
	}
	for _, a := range store.All() {
		for _, j := range a.Connections {
			if a.ID < j {
				if g.Node(int64(a.ID)) != nil && g.Node(int64(j)) != nil {
					g.SetEdge(simple.Edge{F: Node(a.ID), T: Node(j)})
				}
			}
		}
	}
	return &Topology{g}
}

// DownstreamOf returns the set of atom ids reachable from bondTo without
// crossing back over the bondFrom-bondTo edge: the atoms that rotate with
// the chi torsion centered on that bond.
func DownstreamOf(topo *Topology, bondFrom, bondTo int) map[int]bool {
	cut := simple.NewUndirectedGraph()
	nodes := topo.Nodes()
	for nodes.Next() {
		cut.AddNode(nodes.Node())
	}
	edges := topo.Edges()
	for edges.Next() {
		e := edges.Edge()
		f, t := e.From().ID(), e.To().ID()
		if (f == int64(bondFrom) && t == int64(bondTo)) || (f == int64(bondTo) && t == int64(bondFrom)) {
			continue
		}
		cut.SetEdge(e)
	}

	visited := make(map[int]bool)
	bfs := traverse.BreadthFirst{
		Visit: func(n graph.Node) { visited[int(n.ID())] = true },
	}
	visited[bondTo] = true
	bfs.Walk(cut, Node(bondTo), nil)
	return visited
}
