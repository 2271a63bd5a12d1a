package directclient

import (
	"context"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
)

// GetCampaigns lista as campanhas da conta. Com ids vazios devolve todas.
func (c *DirectClient) GetCampaigns(ctx context.Context, ids []int64) ([]directdomain.Campaign, error) {
	result, err := call[directdomain.GetCampaignsResult](ctx, c, "campaigns", "get", directdomain.GetCampaignsParams{
		SelectionCriteria: directdomain.CampaignsSelectionCriteria{IDs: ids},
		FieldNames:        directdomain.CampaignFieldNames,
	})
	if err != nil {
		return nil, err
	}

	return result.Campaigns, nil
}

func (c *DirectClient) AddCampaign(ctx context.Context, item directdomain.CampaignAddItem) (int64, error) {
	result, err := call[directdomain.AddResult](ctx, c, "campaigns", "add", directdomain.AddCampaignsParams{
		Campaigns: []directdomain.CampaignAddItem{item},
	})
	if err != nil {
		return 0, err
	}

	return firstID(result.AddResults)
}

func (c *DirectClient) UpdateCampaign(ctx context.Context, item directdomain.CampaignUpdateItem) error {
	result, err := call[directdomain.UpdateResult](ctx, c, "campaigns", "update", directdomain.UpdateCampaignsParams{
		Campaigns: []directdomain.CampaignUpdateItem{item},
	})
	if err != nil {
		return err
	}

	return directdomain.CollectErrors(result.UpdateResults)
}
