package response

import (
	"dryclean-api/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

// Money fields leave the API as TL amounts, e.g. 85.5.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: catalog.Money{},
			DstType: copier.Float64,
			Fn: func(src any) (any, error) {
				return src.(catalog.Money).Lira(), nil
			},
		},
	},
}

func copyView[T any](src any) (T, error) {
	var dst T
	err := copier.CopyWithOption(&dst, src, copyOption)
	return dst, err
}
