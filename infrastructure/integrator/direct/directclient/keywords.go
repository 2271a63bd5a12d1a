package directclient

import (
	"context"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
)

func (c *DirectClient) GetKeywords(ctx context.Context, campaignID int64) ([]directdomain.Keyword, error) {
	result, err := call[directdomain.GetKeywordsResult](ctx, c, "keywords", "get", directdomain.GetKeywordsParams{
		SelectionCriteria: directdomain.KeywordsSelectionCriteria{CampaignIDs: []int64{campaignID}},
		FieldNames:        []string{"Id", "Keyword", "AdGroupId", "Bid", "StatisticsSearch"},
	})
	if err != nil {
		return nil, err
	}

	return result.Keywords, nil
}

// AddKeywords envia todas as frases numa única chamada e falha se qualquer item for rejeitado
func (c *DirectClient) AddKeywords(ctx context.Context, items []directdomain.KeywordAddItem) ([]int64, error) {
	result, err := call[directdomain.AddResult](ctx, c, "keywords", "add", directdomain.AddKeywordsParams{
		Keywords: items,
	})
	if err != nil {
		return nil, err
	}

	if err := directdomain.CollectErrors(result.AddResults); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(result.AddResults))
	for _, r := range result.AddResults {
		ids = append(ids, r.ID)
	}
	return ids, nil
}
