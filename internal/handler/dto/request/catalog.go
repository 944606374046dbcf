package request

import "dryclean-api/internal/domain/catalog"

// UpdatePricesRequest accepts "85,5" as well as "85.5"; blank values keep the current price.
type UpdatePricesRequest struct {
	Products map[string]string `json:"products"`
	Services map[string]string `json:"services"`
	Bag      string            `json:"bag"`
}

func (r *UpdatePricesRequest) ToDomain() catalog.Update {
	return catalog.Update{
		Products: r.Products,
		Services: r.Services,
		Bag:      r.Bag,
	}
}
