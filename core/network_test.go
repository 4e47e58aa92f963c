// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nv4dll-git/OpenPNM/core"
)

// NetworkSuite exercises topology queries on a 2×3 lattice:
//
//	0 ─ 1 ─ 2
//	│   │   │
//	3 ─ 4 ─ 5
//
// Throats: t0=(0,1) t1=(1,2) t2=(3,4) t3=(4,5) t4=(0,3) t5=(1,4) t6=(2,5).
type NetworkSuite struct {
	suite.Suite
	net *core.Network
}

func (s *NetworkSuite) SetupTest() {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 1, 0}}
	conns := [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {1, 4}, {2, 5}}
	net, err := core.NewNetwork("lattice", coords, conns)
	s.Require().NoError(err)
	s.net = net
}

func (s *NetworkSuite) TestShape() {
	s.Equal(6, s.net.Np())
	s.Equal(7, s.net.Nt())
	c, err := s.net.Conn(5)
	s.Require().NoError(err)
	s.Equal([2]int{1, 4}, c)
	_, err = s.net.Conn(7)
	s.ErrorIs(err, core.ErrThroatOutOfRange)
}

func (s *NetworkSuite) TestFindNeighborPores() {
	got, err := s.net.FindNeighborPores([]int{0, 2}, core.ModeOr)
	s.Require().NoError(err)
	s.Equal([]int{1, 3, 5}, got)

	got, err = s.net.FindNeighborPores([]int{0, 2}, core.ModeXnor)
	s.Require().NoError(err)
	s.Equal([]int{1}, got, "pore 1 is shared by 0 and 2")

	got, err = s.net.FindNeighborPores([]int{0, 2}, core.ModeXor)
	s.Require().NoError(err)
	s.Equal([]int{3, 5}, got)

	_, err = s.net.FindNeighborPores([]int{6}, core.ModeOr)
	s.ErrorIs(err, core.ErrPoreOutOfRange)
	_, err = s.net.FindNeighborPores([]int{0}, core.ModeAnd)
	s.ErrorIs(err, core.ErrUnknownMode)
}

func (s *NetworkSuite) TestFindNeighborThroats() {
	got, err := s.net.FindNeighborThroats([]int{0, 1}, core.ModeOr)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 4, 5}, got)

	got, err = s.net.FindNeighborThroats([]int{0, 1}, core.ModeXor)
	s.Require().NoError(err)
	s.Equal([]int{1, 4, 5}, got)

	got, err = s.net.FindNeighborThroats([]int{0, 1}, core.ModeXnor)
	s.Require().NoError(err)
	s.Equal([]int{0}, got)
}

func (s *NetworkSuite) TestConnectingThroatAndDegree() {
	tt, ok := s.net.FindConnectingThroat(4, 1)
	s.True(ok)
	s.Equal(5, tt)
	_, ok = s.net.FindConnectingThroat(0, 5)
	s.False(ok)

	deg, err := s.net.NumNeighbors([]int{0, 1, 4})
	s.Require().NoError(err)
	s.Equal([]int{2, 3, 3}, deg)

	inc, err := s.net.IncidentThroats(4)
	s.Require().NoError(err)
	s.Equal([]int{2, 3, 5}, inc)
	s.Equal(1, s.net.Other(5, 4))
}

func (s *NetworkSuite) TestCloneKeepsTopology() {
	s.Require().NoError(s.net.SetLabel("pore.left", []int{0, 3}))
	c := s.net.Clone("copy")
	s.Equal(s.net.Conns(), c.Conns())
	s.Equal(s.net.Coords(), c.Coords())
	left, err := c.Pores(core.ModeOr, "left")
	s.Require().NoError(err)
	s.Equal([]int{0, 3}, left)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestNewNetwork_RejectsBadTopology(t *testing.T) {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}}

	_, err := core.NewNetwork("bad", coords, [][2]int{{0, 2}})
	require.ErrorIs(t, err, core.ErrPoreOutOfRange)

	_, err = core.NewNetwork("loop", coords, [][2]int{{1, 1}})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = core.NewNetwork("", coords, nil)
	require.ErrorIs(t, err, core.ErrEmptyName)
}

func TestClustersAndHealth(t *testing.T) {
	// two chains (0-1-2) and (3-4), isolated pore 5, parallel throats 3-4
	coords := make([][3]float64, 6)
	conns := [][2]int{{0, 1}, {2, 1}, {3, 4}, {4, 3}}
	net, err := core.NewNetwork("split", coords, conns)
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, net.Clusters())
	require.Equal(t, net.Clusters(), net.ClustersThrough(nil))
	// cutting 2-1 splits the first chain; one of the parallel throats keeps 3-4 joined
	require.Equal(t, [][]int{{0, 1}, {2}, {3, 4}, {5}},
		net.ClustersThrough([]bool{true, false, false, true}))
	require.Len(t, net.ClustersThrough([]bool{}), 6, "an empty mask disables every throat")

	h := net.CheckHealth()
	require.False(t, h.Healthy())
	require.Equal(t, []int{5}, h.IsolatedPores)
	require.Len(t, h.Clusters, 3)
	require.Equal(t, [][]int{{2, 3}}, h.DuplicateThroats)

	single, err := core.NewNetwork("pair", coords[:2], [][2]int{{0, 1}})
	require.NoError(t, err)
	require.True(t, single.CheckHealth().Healthy())
}
