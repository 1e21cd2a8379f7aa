package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
)

type TileSuite struct {
	suite.Suite
}

func TestTileSuite(t *testing.T) {
	suite.Run(t, new(TileSuite))
}

func (s *TileSuite) TestNewTile_UppercasesLetter() {
	t := model.NewTile(1, 'q', 10)
	s.Equal('Q', t.Letter)
	s.Equal(10, t.Value)
	s.False(t.IsBlank())
	s.True(t.IsAssigned())
	s.Equal("Q", t.String())
}

func (s *TileSuite) TestNewTile_Blank() {
	t := model.NewTile(2, model.BlankLetter, 5)
	s.True(t.IsBlank())
	s.False(t.IsAssigned())
	s.Equal(0, t.Value)
	s.Equal("?", t.String())
}

func (s *TileSuite) TestAssign() {
	blank := model.NewTile(2, model.BlankLetter, 0)

	assigned := blank.Assign('e')
	s.Equal('E', assigned.Letter)
	s.Equal(model.TileID(2), assigned.ID)
	s.Equal(0, assigned.Value)
	s.True(assigned.IsAssigned())
	s.Equal("e", assigned.String())

	s.Equal(blank, assigned.Unassigned())
}

func (s *TileSuite) TestAssign_IgnoredForRegularTiles() {
	t := model.NewTile(1, 'A', 1)
	s.Equal(t, t.Assign('Z'))
	s.Equal(t, t.Unassigned())
}

func (s *TileSuite) TestSameFace() {
	a1 := model.NewTile(1, 'A', 1)
	a2 := model.NewTile(2, 'A', 1)
	b := model.NewTile(3, 'B', 3)
	blankA := model.NewTile(4, model.BlankLetter, 0).Assign('A')

	s.True(a1.SameFace(a2))
	s.False(a1.SameFace(b))
	s.False(a1.SameFace(blankA))
}

type DistributionSuite struct {
	suite.Suite
}

func TestDistributionSuite(t *testing.T) {
	suite.Run(t, new(DistributionSuite))
}

func (s *DistributionSuite) TestTotals() {
	s.Equal(102, model.StandardDistribution().Total())
	s.Equal(100, model.EnglishDistribution().Total())
}

func (s *DistributionSuite) TestTiles_SequentialIDsInLetterOrder() {
	tiles := model.StandardDistribution().Tiles()
	s.Require().Len(tiles, 102)

	for i, t := range tiles {
		s.Equal(model.TileID(i+1), t.ID)
	}
	s.True(tiles[0].IsBlank())
	s.True(tiles[1].IsBlank())
	s.Equal('A', tiles[2].Letter)
	s.Equal('Z', tiles[101].Letter)
	s.Equal(10, tiles[101].Value)
}

func (s *DistributionSuite) TestValueOf() {
	dist := model.StandardDistribution()
	s.Equal(1, dist.ValueOf('E'))
	s.Equal(8, dist.ValueOf('Q'))
	s.Equal(0, dist.ValueOf(model.BlankLetter))
	s.Equal(0, dist.ValueOf('#'))
}

func (s *DistributionSuite) TestDistributionByName() {
	dist, ok := model.DistributionByName("english")
	s.True(ok)
	s.Equal("english", dist.Name)

	dist, ok = model.DistributionByName("")
	s.True(ok)
	s.Equal("standard", dist.Name)

	_, ok = model.DistributionByName("klingon")
	s.False(ok)
}
