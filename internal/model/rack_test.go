package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabble-go/internal/model"
)

type RackSuite struct {
	suite.Suite
}

func TestRackSuite(t *testing.T) {
	suite.Run(t, new(RackSuite))
}

func tiles(letters string) []model.Tile {
	dist := model.StandardDistribution()
	out := make([]model.Tile, 0, len(letters))
	for i, l := range letters {
		out = append(out, model.NewTile(model.TileID(i+1), l, dist.ValueOf(l)))
	}
	return out
}

func (s *RackSuite) TestAddAndRemove() {
	rack := model.NewRack(tiles("CAT")...)
	s.Equal(3, rack.Len())
	s.Equal("CAT", rack.String())
	s.Equal(5, rack.Value())

	removed, err := rack.Remove(2)
	s.Require().NoError(err)
	s.Equal('A', removed.Letter)
	s.Equal("CT", rack.String())
	s.False(rack.Contains(2))

	_, err = rack.Remove(2)
	s.ErrorIs(err, model.ErrRackMismatch)
}

func (s *RackSuite) TestAdd_FailsWhenFull() {
	rack := model.NewRack(tiles("ABCDEFG")...)
	s.True(rack.IsFull())

	err := rack.Add(model.NewTile(99, 'H', 4))
	s.ErrorIs(err, model.ErrRackFull)
	s.Equal(model.RackSize, rack.Len())
}

func (s *RackSuite) TestGet() {
	rack := model.NewRack(tiles("AB?")...)

	t, ok := rack.Get(3)
	s.True(ok)
	s.True(t.IsBlank())

	_, ok = rack.Get(4)
	s.False(ok)
}

func (s *RackSuite) TestTiles_ReturnsCopy() {
	rack := model.NewRack(tiles("AB")...)
	got := rack.Tiles()
	got[0].Letter = 'Z'
	s.Equal("AB", rack.String())
}

type BagSuite struct {
	suite.Suite
	random *mocks.MockRandom
	bag    *model.Bag
}

func TestBagSuite(t *testing.T) {
	suite.Run(t, new(BagSuite))
}

func (s *BagSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.bag = model.NewBag(model.StandardDistribution(), s.random)
}

func (s *BagSuite) TestNewBag_ShufflesFullSet() {
	s.Equal(102, s.bag.Len())
	s.Equal(1, s.random.ShuffleCalls)
}

func (s *BagSuite) TestDraw_TakesFromTop() {
	t, err := s.bag.Draw()
	s.Require().NoError(err)
	s.Equal('Z', t.Letter)
	s.Equal(101, s.bag.Len())
	s.False(s.bag.Contains(t.ID))
}

func (s *BagSuite) TestDraw_EmptyBag() {
	for !s.bag.IsEmpty() {
		_, err := s.bag.Draw()
		s.Require().NoError(err)
	}
	_, err := s.bag.Draw()
	s.ErrorIs(err, model.ErrBagEmpty)
}

func (s *BagSuite) TestTake() {
	t, err := s.bag.Take(50)
	s.Require().NoError(err)
	s.Equal(model.TileID(50), t.ID)
	s.False(s.bag.Contains(50))

	_, err = s.bag.Take(50)
	s.ErrorIs(err, model.ErrTileNotFound)
}

func (s *BagSuite) TestPutBack_UnassignsBlanksAndShuffles() {
	blank, err := s.bag.Take(1)
	s.Require().NoError(err)

	s.bag.PutBack(blank.Assign('Q'))

	s.Equal(102, s.bag.Len())
	s.Equal(2, s.random.ShuffleCalls)
	top, err := s.bag.Draw()
	s.Require().NoError(err)
	s.Equal(model.TileID(1), top.ID)
	s.False(top.IsAssigned())
}
