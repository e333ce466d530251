package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/export/pdf"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type SheetTestSuite struct {
	suite.Suite
	engine engine.Engine
}

func (s *SheetTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{Catalog: testutils.CreateTestCatalog()})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *SheetTestSuite) summarize(playerID string, mixed bool) ([]byte, error) {
	ch := testutils.CreateTestCharacter(playerID)
	if mixed {
		ch = testutils.CreateTestMixedCharacter(playerID)
	}
	out, err := s.engine.Summarize(context.Background(), &engine.SummarizeInput{Character: ch})
	s.Require().NoError(err)
	return pdf.RenderSheet(ch, out.Summary)
}

func (s *SheetTestSuite) TestRenderSheet_Level1() {
	data, err := s.summarize("player-1", false)
	s.Require().NoError(err)

	s.True(bytes.HasPrefix(data, []byte("%PDF-")))
	s.Contains(string(bytes.TrimSpace(data[len(data)-16:])), "%%EOF")
}

func (s *SheetTestSuite) TestRenderSheet_MixedWithMilestones() {
	data, err := s.summarize("player-1", true)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(data, []byte("%PDF-")))
}

func (s *SheetTestSuite) TestRenderSheet_MissingInput() {
	_, err := pdf.RenderSheet(nil, &engine.Summary{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = pdf.RenderSheet(testutils.CreateTestCharacter("p"), nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestSheetTestSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func TestRenderSheet_SummaryWithoutBudget(t *testing.T) {
	ch := testutils.CreateTestCharacter("p")
	data, err := pdf.RenderSheet(ch, &engine.Summary{Level: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
