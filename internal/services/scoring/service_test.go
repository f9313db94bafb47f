package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/board"
	"github.com/mcoot/feastgame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	session *model.Session
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(DefaultPolicy(), testutil.NopLogger())

	faroe, _ := catalog.LookupIsland(catalog.IslandFaroe)
	s.session = &model.Session{
		ID:           "session-1",
		Phase:        model.PhaseWork,
		Home:         catalog.NewHomeSurface(),
		Islands:      []*model.Surface{faroe.NewSurface()},
		FeastPenalty: -3,
	}
}

// homeWithoutIncome is the home board with its five bonuses and no income track
func homeWithoutIncome() *model.Grid {
	layout := catalog.HomeLayout()
	layout.IncomeColumn = model.NoIncomeTrack
	return model.NewGrid(layout)
}

// Score tests

func (s *ServiceSuite) TestEmptyHomeGridWithoutIncome() {
	s.Equal(-(91 - 5), Score(homeWithoutIncome()))
}

func (s *ServiceSuite) TestCoveringPenaltyCellImprovesScoreByOne() {
	surface := &model.Surface{ID: model.HomeSurface, Grid: homeWithoutIncome()}
	before := Score(surface.Grid)

	peas := catalog.MustShape("peas")
	board.Commit(surface, peas, model.Rotate0, peas.Matrix, 0, 0)

	s.Equal(-86, before)
	s.Equal(-85, Score(surface.Grid))
}

func (s *ServiceSuite) TestBonusAndIncomeCellsNeverPenalise() {
	grid := model.NewGrid(catalog.HomeLayout())

	// 5 bonus cells plus 6 income cells on the diagonal
	s.Equal(-(91 - 5 - 6), Score(grid))
}

func (s *ServiceSuite) TestFullyCoveredGridScoresZero() {
	grid := model.NewGrid(catalog.HomeLayout())
	for y := range grid.Cells {
		for x := range grid.Cells[y] {
			grid.At(x, y).Covered = true
		}
	}
	s.Equal(0, Score(grid))
}

func (s *ServiceSuite) TestGridWithoutPenalties() {
	grid := model.NewGrid(model.Layout{Width: 3, Height: 3, IncomeColumn: model.NoIncomeTrack})
	s.Equal(0, Score(grid))
}

// ScoreSession tests

func (s *ServiceSuite) TestDefaultPolicyScoresHomeOnly() {
	card := s.service.ScoreSession(s.session)

	s.Require().Len(card.Surfaces, 1)
	s.Equal(model.HomeSurface, card.Surfaces[0].Surface)
	s.Equal(-80, card.Surfaces[0].Score)
	s.Equal(0, card.IslandVP)
	s.Equal(0, card.FeastPenalty)
	s.Equal(Score(s.session.Home.Grid), card.Total)
	s.False(card.Final)
}

func (s *ServiceSuite) TestDefaultTotalTracksHomeBoard() {
	peas := catalog.MustShape("peas")
	board.Commit(s.session.Home, peas, model.Rotate0, peas.Matrix, 0, 0)
	s.session.FeastPenalty = -84

	card := s.service.ScoreSession(s.session)
	s.Equal(Score(s.session.Home.Grid), card.Total)
	s.Equal(-79, card.Total)
}

func (s *ServiceSuite) TestFeastPenaltyHouseRule() {
	service := New(Policy{FeastPenalties: true}, testutil.NopLogger())

	card := service.ScoreSession(s.session)
	s.Equal(-3, card.FeastPenalty)
	s.Equal(-83, card.Total)
}

func (s *ServiceSuite) TestIslandPolicy() {
	service := New(Policy{IncludeIslands: true, IslandVP: true}, testutil.NopLogger())

	card := service.ScoreSession(s.session)

	// faroe: 40 cells, 3 bonuses, 5 income cells
	s.Require().Len(card.Surfaces, 2)
	s.Equal(catalog.IslandFaroe, card.Surfaces[1].Surface)
	s.Equal(-32, card.Surfaces[1].Score)
	s.Equal(2, card.IslandVP)
	s.Equal(0, card.FeastPenalty)
	s.Equal(-80-32+2, card.Total)
}

func (s *ServiceSuite) TestFinalWhenGameOver() {
	s.session.Phase = model.PhaseGameOver

	card := s.service.ScoreSession(s.session)
	s.True(card.Final)
}

func (s *ServiceSuite) TestPolicyAccessor() {
	s.Equal(DefaultPolicy(), s.service.Policy())
}
