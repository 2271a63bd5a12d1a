package direct

import (
	"context"
	"testing"
	"time"

	"github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/directclient/mocks"
	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(ctrl *gomock.Controller) (*DirectIntegrator, *mocks.MockClient) {
	client := mocks.NewMockClient(ctrl)
	cfg := &config.Config{
		Direct: config.Direct{AdHref: "https://grifun.ru", AdDisplayPath: "grifun"},
	}

	integrator := New(cfg, client)
	integrator.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	return integrator, client
}

func TestDirectIntegrator_UpdateCampaign_Budget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		current      directdomain.Campaign
		budget       *domain.DailyBudget
		setup        func(client *mocks.MockClient)
		expectedErr  error
		expectedMode string
	}{
		{
			name:    "mantém o modo atual do orçamento",
			current: directdomain.Campaign{ID: 10, Type: "TEXT_CAMPAIGN", DailyBudget: &directdomain.DailyBudget{Amount: 100000, Mode: "STANDARD"}},
			budget:  &domain.DailyBudget{Amount: 15000},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item directdomain.CampaignUpdateItem) error {
						assert.Equal(t, int64(15000), item.DailyBudget.Amount)
						assert.Equal(t, "STANDARD", item.DailyBudget.Mode)
						assert.Nil(t, item.TextCampaign)
						return nil
					})
			},
		},
		{
			name:    "campanha PERFORMANCE tenta estratégia manual antes do orçamento",
			current: directdomain.Campaign{ID: 10, Type: "PERFORMANCE"},
			budget:  &domain.DailyBudget{Amount: 30000},
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, item directdomain.CampaignUpdateItem) error {
							require.NotNil(t, item.PerformanceCampaign)
							assert.Equal(t, domain.BiddingStrategyManualCPC, item.PerformanceCampaign.BiddingStrategy.Search.BiddingStrategyType)
							return errors.New("strategy not allowed")
						}),
					client.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, item directdomain.CampaignUpdateItem) error {
							assert.Equal(t, domain.BudgetModeDistributed, item.DailyBudget.Mode)
							return nil
						}),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newTestIntegrator(ctrl)
			client.EXPECT().GetCampaigns(gomock.Any(), []int64{10}).Return([]directdomain.Campaign{tt.current}, nil)
			tt.setup(client)

			err := integrator.UpdateCampaign(context.Background(), 10, domain.CampaignUpdate{DailyBudget: tt.budget})

			assert.NoError(t, err)
		})
	}
}

func TestDirectIntegrator_UpdateCampaign_RejectsBudgetBeforeCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, _ := newTestIntegrator(ctrl)

	for _, amount := range []int64{299, 1_000_000_001} {
		err := integrator.UpdateCampaign(context.Background(), 10, domain.CampaignUpdate{
			DailyBudget: &domain.DailyBudget{Amount: amount},
		})
		assert.ErrorIs(t, err, domain.ErrDailyBudgetOutOfRange)
	}
}

func TestDirectIntegrator_UpdateCampaign_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client := newTestIntegrator(ctrl)
	client.EXPECT().GetCampaigns(gomock.Any(), []int64{99}).Return([]directdomain.Campaign{}, nil)

	err := integrator.UpdateCampaign(context.Background(), 99, domain.CampaignUpdate{Name: "Новое имя"})

	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestDirectIntegrator_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cria campanha de texto e aplica orçamento numa segunda chamada", func(t *testing.T) {
		integrator, client := newTestIntegrator(ctrl)

		client.EXPECT().AddCampaign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item directdomain.CampaignAddItem) (int64, error) {
				assert.Equal(t, "2024-03-10", item.StartDate)
				require.NotNil(t, item.TextCampaign)
				assert.Equal(t, domain.BiddingStrategyAverageCPC, item.TextCampaign.BiddingStrategy.Search.BiddingStrategyType)
				assert.Equal(t, int64(1_000_000), item.TextCampaign.BiddingStrategy.Search.AverageCpc.AverageCpc)
				assert.Equal(t, domain.BiddingStrategyServingOff, item.TextCampaign.BiddingStrategy.Network.BiddingStrategyType)
				return 555, nil
			})
		client.EXPECT().GetCampaigns(gomock.Any(), []int64{555}).
			Return([]directdomain.Campaign{{ID: 555, Type: "TEXT_CAMPAIGN"}}, nil)
		client.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).Return(errors.New("budget rejected"))

		id, err := integrator.CreateCampaign(context.Background(), domain.CreateCampaignRequest{
			Name:        "Автоматизация",
			Type:        domain.CampaignTypeText,
			DailyBudget: 500,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(555), id)
	})

	t.Run("com log em debug o item enviado é registrado e a campanha é criada", func(t *testing.T) {
		level := logrus.GetLevel()
		logrus.SetLevel(logrus.DebugLevel)
		defer logrus.SetLevel(level)

		integrator, client := newTestIntegrator(ctrl)
		client.EXPECT().AddCampaign(gomock.Any(), gomock.Any()).Return(int64(777), nil)

		id, err := integrator.CreateCampaign(context.Background(), domain.CreateCampaignRequest{
			Name: "Автоматизация",
			Type: domain.CampaignTypeText,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(777), id)
	})

	t.Run("orçamento fora do intervalo não chama a API", func(t *testing.T) {
		integrator, _ := newTestIntegrator(ctrl)

		_, err := integrator.CreateCampaign(context.Background(), domain.CreateCampaignRequest{
			Name:        "Автоматизация",
			DailyBudget: 2,
		})

		assert.ErrorIs(t, err, domain.ErrDailyBudgetOutOfRange)
	})
}

func TestDirectIntegrator_AddNegativeKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("usa o primeiro grupo e preserva minus-palavras existentes", func(t *testing.T) {
		integrator, client := newTestIntegrator(ctrl)

		client.EXPECT().GetAdGroups(gomock.Any(), int64(10)).Return([]directdomain.AdGroup{
			{ID: 1, NegativeKeywords: &directdomain.ArrayOfString{Items: []string{"бесплатно"}}},
			{ID: 2},
		}, nil)
		client.EXPECT().UpdateAdGroup(gomock.Any(), directdomain.AdGroupUpdateItem{
			ID:               1,
			NegativeKeywords: &directdomain.ArrayOfString{Items: []string{"бесплатно", "обувь", "ремонт"}},
		}).Return(nil)

		count, err := integrator.AddNegativeKeywords(context.Background(), 10, 0, []string{"обувь", " ремонт!", "бесплатно"})

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("campanha sem grupos", func(t *testing.T) {
		integrator, client := newTestIntegrator(ctrl)
		client.EXPECT().GetAdGroups(gomock.Any(), int64(10)).Return(nil, nil)

		_, err := integrator.AddNegativeKeywords(context.Background(), 10, 0, []string{"обувь"})

		assert.ErrorIs(t, err, ErrNoAdGroups)
	})

	t.Run("grupo informado fora da campanha não é sobrescrito", func(t *testing.T) {
		integrator, client := newTestIntegrator(ctrl)
		client.EXPECT().GetAdGroups(gomock.Any(), int64(10)).Return([]directdomain.AdGroup{{ID: 1}}, nil)
		client.EXPECT().UpdateAdGroup(gomock.Any(), gomock.Any()).Times(0)

		_, err := integrator.AddNegativeKeywords(context.Background(), 10, 99, []string{"обувь"})

		assert.ErrorIs(t, err, ErrAdGroupNotInCampaign)
	})

	t.Run("grupo informado recebe a lista mesclada", func(t *testing.T) {
		integrator, client := newTestIntegrator(ctrl)
		client.EXPECT().GetAdGroups(gomock.Any(), int64(10)).Return([]directdomain.AdGroup{
			{ID: 1},
			{ID: 2, NegativeKeywords: &directdomain.ArrayOfString{Items: []string{"бесплатно"}}},
		}, nil)
		client.EXPECT().UpdateAdGroup(gomock.Any(), directdomain.AdGroupUpdateItem{
			ID:               2,
			NegativeKeywords: &directdomain.ArrayOfString{Items: []string{"бесплатно", "обувь"}},
		}).Return(nil)

		count, err := integrator.AddNegativeKeywords(context.Background(), 10, 2, []string{"обувь"})

		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("nenhuma palavra válida", func(t *testing.T) {
		integrator, _ := newTestIntegrator(ctrl)

		_, err := integrator.AddNegativeKeywords(context.Background(), 10, 0, []string{"!!!", ""})

		assert.ErrorIs(t, err, ErrNoValidNegativeKeyword)
	})
}

func TestDirectIntegrator_CreateTextAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client := newTestIntegrator(ctrl)

	client.EXPECT().AddAd(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item directdomain.AdAddItem) (int64, error) {
			assert.Equal(t, int64(7), item.AdGroupID)
			assert.Equal(t, "Короткий текст для теста", item.TextAd.Title)
			assert.Equal(t, "https://grifun.ru", item.TextAd.Href)
			assert.Equal(t, "NO", item.TextAd.Mobile)
			return 900, nil
		})
	client.EXPECT().ModerateAds(gomock.Any(), []int64{900}).Return(errors.New("moderation unavailable"))

	adID, err := integrator.CreateTextAd(context.Background(), 7, "Короткий текст для теста объявления номер один")

	require.NoError(t, err)
	assert.Equal(t, int64(900), adID)
}

func TestDirectIntegrator_GetCampaignStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client := newTestIntegrator(ctrl)
	client.EXPECT().GetCampaignPerformanceReport(gomock.Any(), []int64{123}, "2024-03-03", "2024-03-10").
		Return("CampaignId\tImpressions\tClicks\tCost\tCtr\tAvgCpc\n123\t1000\t20\t500.5\t2.0\t25.0", nil)

	stats, err := integrator.GetCampaignStats(context.Background(), []int64{123}, domain.StatsPeriod{DateFrom: "2024-03-03", DateTo: "2024-03-10"})

	require.NoError(t, err)
	assert.Equal(t, []domain.CampaignStats{
		{CampaignID: 123, Impressions: 1000, Clicks: 20, Cost: 500.5, CTR: 2.0, AvgCPC: 25.0},
	}, stats)
}
