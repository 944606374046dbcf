package response

import "dryclean-api/internal/usecase/queries"

type PriceItemResponse struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type CatalogResponse struct {
	Products []PriceItemResponse `json:"products"`
	Services []PriceItemResponse `json:"services"`
	BagPrice float64             `json:"bagPrice"`
}

type UpdatePricesResponse struct {
	Catalog  *CatalogResponse `json:"catalog"`
	Rejected []string         `json:"rejected"`
}

func FromCatalogView(v *queries.CatalogView) (*CatalogResponse, error) {
	out, err := copyView[CatalogResponse](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
