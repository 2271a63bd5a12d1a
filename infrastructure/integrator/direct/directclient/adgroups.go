package directclient

import (
	"context"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
)

func (c *DirectClient) GetAdGroups(ctx context.Context, campaignID int64) ([]directdomain.AdGroup, error) {
	result, err := call[directdomain.GetAdGroupsResult](ctx, c, "adgroups", "get", directdomain.GetAdGroupsParams{
		SelectionCriteria: directdomain.AdGroupsSelectionCriteria{CampaignIDs: []int64{campaignID}},
		FieldNames:        []string{"Id", "Name", "CampaignId", "NegativeKeywords"},
	})
	if err != nil {
		return nil, err
	}

	return result.AdGroups, nil
}

func (c *DirectClient) UpdateAdGroup(ctx context.Context, item directdomain.AdGroupUpdateItem) error {
	result, err := call[directdomain.UpdateResult](ctx, c, "adgroups", "update", directdomain.UpdateAdGroupsParams{
		AdGroups: []directdomain.AdGroupUpdateItem{item},
	})
	if err != nil {
		return err
	}

	return directdomain.CollectErrors(result.UpdateResults)
}
