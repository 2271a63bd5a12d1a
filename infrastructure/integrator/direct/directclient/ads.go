package directclient

import (
	"context"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
)

func (c *DirectClient) GetAds(ctx context.Context, campaignID int64) ([]directdomain.Ad, error) {
	result, err := call[directdomain.GetAdsResult](ctx, c, "ads", "get", directdomain.GetAdsParams{
		SelectionCriteria: directdomain.AdsSelectionCriteria{CampaignIDs: []int64{campaignID}},
		FieldNames:        []string{"Id", "AdGroupId", "Type", "State"},
		TextAdFieldNames:  []string{"Title", "Text", "Href"},
	})
	if err != nil {
		return nil, err
	}

	return result.Ads, nil
}

func (c *DirectClient) AddAd(ctx context.Context, item directdomain.AdAddItem) (int64, error) {
	result, err := call[directdomain.AddResult](ctx, c, "ads", "add", directdomain.AddAdsParams{
		Ads: []directdomain.AdAddItem{item},
	})
	if err != nil {
		return 0, err
	}

	return firstID(result.AddResults)
}

func (c *DirectClient) ModerateAds(ctx context.Context, ids []int64) error {
	result, err := call[directdomain.ModerateResult](ctx, c, "ads", "moderate", directdomain.ModerateAdsParams{
		SelectionCriteria: directdomain.IDsCriteria{IDs: ids},
	})
	if err != nil {
		return err
	}

	return directdomain.CollectErrors(result.ModerateResults)
}
