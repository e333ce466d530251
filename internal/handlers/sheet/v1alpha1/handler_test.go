package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/abilities"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/archetype"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/budget"
	enginedice "github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const (
	testPlayerID  = "player-456"
	testSessionID = "table-7"
	bufSize       = 1024 * 1024
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSheet *sheetmock.MockService
	mockDice  *dicemock.MockService
	server    *grpc.Server
	conn      *grpc.ClientConn
	client    v1alpha1.SheetServiceClient
	ctx       context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: s.mockSheet,
		DiceService:  s.mockDice,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterSheetServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewSheetServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code(), st.Message())
}

func (s *HandlerTestSuite) TestNewHandler_MissingServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "SheetService")
	s.Contains(err.Error(), "DiceService")
}

func (s *HandlerTestSuite) TestGetCharacter_RoundTripsOverJSON() {
	ch := testutils.CreateTestMixedCharacter(testPlayerID)

	s.mockSheet.EXPECT().
		GetCharacter(gomock.Any(), &sheet.GetCharacterInput{CharacterID: ch.ID}).
		Return(&sheet.GetCharacterOutput{Character: ch}, nil)

	resp, err := s.client.GetCharacter(s.ctx, &v1alpha1.CharacterRequest{CharacterID: ch.ID})
	s.Require().NoError(err)
	s.Equal(ch, resp.Character)
}

func (s *HandlerTestSuite) TestGetSummary_NotFound() {
	s.mockSheet.EXPECT().
		GetSummary(gomock.Any(), &sheet.GetSummaryInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.client.GetSummary(s.ctx, &v1alpha1.CharacterRequest{CharacterID: "missing"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetSummary_RequiresID() {
	_, err := s.client.GetSummary(s.ctx, &v1alpha1.CharacterRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetSummary_Success() {
	summary := &engine.Summary{
		CharacterID:    testutils.TestCharacterID,
		Level:          4,
		Archetype:      archetype.Progress{Type: archetype.TypeMixed, InnateThreshold: 8},
		AbilityCeiling: 5,
		DefenseCeiling: 14,
		Defenses:       map[string]int{"might": 2},
		Abilities:      map[character.Ability]int{character.Strength: 2},
	}

	s.mockSheet.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		Return(&sheet.GetSummaryOutput{Summary: summary}, nil)

	resp, err := s.client.GetSummary(s.ctx, &v1alpha1.CharacterRequest{CharacterID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Equal(summary, resp.Summary)
}

func (s *HandlerTestSuite) TestIncreaseAbility_ReportsCheck() {
	ch := testutils.CreateTestCharacter(testPlayerID)

	s.mockSheet.EXPECT().
		IncreaseAbility(gomock.Any(), &sheet.AbilityChangeInput{
			CharacterID: ch.ID,
			Ability:     character.Strength,
		}).
		Return(&sheet.IncreaseAbilityOutput{
			Character: ch,
			Check:     abilities.IncreaseCheck{Reason: abilities.ReasonAtCeiling},
		}, nil)

	resp, err := s.client.IncreaseAbility(s.ctx, &v1alpha1.AbilityRequest{CharacterID: ch.ID, Ability: "strength"})
	s.Require().NoError(err)
	s.False(resp.Saved)
	s.Require().NotNil(resp.Check)
	s.False(resp.Check.Allowed)
	s.Equal("at_ceiling", resp.Check.Reason)
}

func (s *HandlerTestSuite) TestIncreaseAbility_UnknownAbility() {
	_, err := s.client.IncreaseAbility(s.ctx, &v1alpha1.AbilityRequest{CharacterID: "c", Ability: "luck"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestIncreaseSkill_Saves() {
	ch := testutils.CreateTestCharacter(testPlayerID)
	ch.Skills[0].Value = 1

	s.mockSheet.EXPECT().
		IncreaseSkill(gomock.Any(), &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"}).
		Return(&sheet.IncreaseSkillOutput{
			Character: ch,
			Check:     budget.Check{Allowed: true, Cost: budget.SkillRankCost},
			Saved:     true,
		}, nil)

	resp, err := s.client.IncreaseSkill(s.ctx, &v1alpha1.SkillRequest{CharacterID: ch.ID, Skill: "Athletics"})
	s.Require().NoError(err)
	s.True(resp.Saved)
	s.Require().NotNil(resp.Check)
	s.Equal(budget.SkillRankCost, resp.Check.Cost)
	s.Equal(1, resp.Character.Skills[0].Value)
}

func (s *HandlerTestSuite) TestDecreaseSkill_ReportsRefusal() {
	ch := testutils.CreateTestCharacter(testPlayerID)

	s.mockSheet.EXPECT().
		DecreaseSkill(gomock.Any(), &sheet.SkillChangeInput{CharacterID: ch.ID, Skill: "Athletics"}).
		Return(&sheet.DecreaseSkillOutput{
			Character: ch,
			Check:     budget.Check{Reason: budget.ReasonAtMinimum},
		}, nil)

	resp, err := s.client.DecreaseSkill(s.ctx, &v1alpha1.SkillRequest{CharacterID: ch.ID, Skill: "Athletics"})
	s.Require().NoError(err)
	s.False(resp.Saved)
	s.Equal("at_minimum", resp.Check.Reason)
}

func (s *HandlerTestSuite) TestSkillChange_RequiresSkill() {
	_, err := s.client.IncreaseSkill(s.ctx, &v1alpha1.SkillRequest{CharacterID: "c"})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.client.DecreaseSkill(s.ctx, &v1alpha1.SkillRequest{Skill: "Athletics"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestSetMilestoneChoice_NormalizesChoice() {
	ch := testutils.CreateTestMixedCharacter(testPlayerID)

	s.mockSheet.EXPECT().
		SetMilestoneChoice(gomock.Any(), &sheet.SetMilestoneChoiceInput{
			CharacterID: ch.ID,
			Milestone:   10,
			Choice:      character.ChoiceInnate,
		}).
		Return(&sheet.SetMilestoneChoiceOutput{
			Character: ch,
			Check:     archetype.ChoiceCheck{Allowed: true},
			Saved:     true,
		}, nil)

	resp, err := s.client.SetMilestoneChoice(s.ctx, &v1alpha1.SetMilestoneChoiceRequest{
		CharacterID: ch.ID,
		Milestone:   10,
		Choice:      "Innate",
	})
	s.Require().NoError(err)
	s.True(resp.Saved)
	s.True(resp.Check.Allowed)
}

func (s *HandlerTestSuite) TestSetProficiency_ReportsArchetype() {
	ch := testutils.CreateTestMixedCharacter(testPlayerID)

	s.mockSheet.EXPECT().
		SetProficiency(gomock.Any(), &sheet.SetProficiencyInput{CharacterID: ch.ID, Martial: 2}).
		Return(&sheet.SetProficiencyOutput{
			Character: ch,
			Archetype: archetype.TypeMartial,
			Cleanup:   sheet.Cleanup{DroppedMilestones: []int{4, 7}},
		}, nil)

	resp, err := s.client.SetProficiency(s.ctx, &v1alpha1.SetProficiencyRequest{CharacterID: ch.ID, Martial: 2})
	s.Require().NoError(err)
	s.Equal(string(archetype.TypeMartial), resp.Archetype)
	s.Equal([]int{4, 7}, resp.DroppedMilestones)
}

func (s *HandlerTestSuite) TestRollPool_ConvertsDice() {
	entry := &enginedice.Entry{
		ID:       "roll_1",
		Kind:     enginedice.KindCustom,
		Dice:     []enginedice.DieResult{{Sides: 6, Value: 3}, {Sides: 6, Value: 5}},
		Modifier: 2,
		Total:    10,
		RolledAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	s.mockDice.EXPECT().
		RollPool(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollPoolInput) (*dice.RollPoolOutput, error) {
			s.Equal(testSessionID, input.SessionID)
			s.Equal(2, input.Pool.Counts[enginedice.D6])
			s.Equal(2, input.Pool.Modifier)
			return &dice.RollPoolOutput{Entry: entry}, nil
		})

	resp, err := s.client.RollPool(s.ctx, &v1alpha1.RollPoolRequest{
		SessionID: testSessionID,
		Dice:      map[string]int{"d6": 2, "D20": 0},
		Modifier:  2,
	})
	s.Require().NoError(err)
	s.Equal(entry, resp.Entry)
}

func (s *HandlerTestSuite) TestRollPool_UnknownDie() {
	_, err := s.client.RollPool(s.ctx, &v1alpha1.RollPoolRequest{
		SessionID: testSessionID,
		Dice:      map[string]int{"d7": 1},
	})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestRollDamage_BadNotation() {
	s.mockDice.EXPECT().
		RollDamage(gomock.Any(), &dice.RollDamageInput{SessionID: testSessionID, Notation: "lots"}).
		Return(nil, errors.InvalidArgumentf("invalid damage notation: %q", "lots"))

	_, err := s.client.RollDamage(s.ctx, &v1alpha1.RollDamageRequest{SessionID: testSessionID, Notation: "lots"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetAndClearRollLog() {
	entries := []enginedice.Entry{{ID: "roll_2", Kind: enginedice.KindSkill, Total: 12, RolledAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}}

	s.mockDice.EXPECT().
		GetLog(gomock.Any(), &dice.GetLogInput{SessionID: testSessionID, Limit: 10}).
		Return(&dice.GetLogOutput{Entries: entries}, nil)
	s.mockDice.EXPECT().
		ClearLog(gomock.Any(), &dice.ClearLogInput{SessionID: testSessionID}).
		Return(&dice.ClearLogOutput{RollsDeleted: 1}, nil)

	logResp, err := s.client.GetRollLog(s.ctx, &v1alpha1.RollLogRequest{SessionID: testSessionID, Limit: 10})
	s.Require().NoError(err)
	s.Equal(entries, logResp.Entries)

	clearResp, err := s.client.ClearRollLog(s.ctx, &v1alpha1.RollLogRequest{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(1, clearResp.RollsDeleted)
}
