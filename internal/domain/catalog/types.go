package catalog

import "strings"

type ProductKey string

const (
	ProductShirt    ProductKey = "gomlek"
	ProductTShirt   ProductKey = "tisort"
	ProductSweater  ProductKey = "kazak"
	ProductTrousers ProductKey = "pantolon"
	ProductDress    ProductKey = "elbise"
	ProductCoat     ProductKey = "mont"
	ProductSuit     ProductKey = "takim"
	ProductSocks    ProductKey = "corap"
)

type ServiceKey string

const (
	// ServiceNone means the customer did not order the item.
	ServiceNone        ServiceKey = "yok"
	ServiceWash        ServiceKey = "yikama"
	ServiceWashDry     ServiceKey = "yikama_kurutma"
	ServiceWashDryIron ServiceKey = "yikama_kurutma_utu"
	ServiceIronOnly    ServiceKey = "sadece_utu"
)

// Category is the first half of the persisted (category, key) price setting.
type Category string

const (
	CategoryProduct Category = "product"
	CategoryService Category = "service"
	CategoryBag     Category = "bag"
)

const BagKey = "bag"

func (c Category) IsValid() bool {
	switch c {
	case CategoryProduct, CategoryService, CategoryBag:
		return true
	default:
		return false
	}
}

var productOrder = []ProductKey{
	ProductShirt,
	ProductTShirt,
	ProductSweater,
	ProductTrousers,
	ProductDress,
	ProductCoat,
	ProductSuit,
	ProductSocks,
}

var serviceOrder = []ServiceKey{
	ServiceNone,
	ServiceWash,
	ServiceWashDry,
	ServiceWashDryIron,
	ServiceIronOnly,
}

var productLabels = map[ProductKey]string{
	ProductShirt:    "Gömlek",
	ProductTShirt:   "Tişört / Crop",
	ProductSweater:  "Kazak / Sweatshirt",
	ProductTrousers: "Pantolon / Eşofman / Tayt",
	ProductDress:    "Elbise / Etek",
	ProductCoat:     "Mont / Kaban",
	ProductSuit:     "Takım Elbise",
	ProductSocks:    "Çorap (çift)",
}

var serviceLabels = map[ServiceKey]string{
	ServiceWash:        "Sadece Yıkama",
	ServiceWashDry:     "Yıkama + Kurutma",
	ServiceWashDryIron: "Yıkama + Kurutma + Ütü",
	ServiceIronOnly:    "Sadece Ütü",
}

// Products returns the product keys in display order.
func Products() []ProductKey {
	out := make([]ProductKey, len(productOrder))
	copy(out, productOrder)
	return out
}

// Services returns the service keys in display order, ServiceNone first.
func Services() []ServiceKey {
	out := make([]ServiceKey, len(serviceOrder))
	copy(out, serviceOrder)
	return out
}

func (k ProductKey) String() string {
	return string(k)
}

func (k ProductKey) Label() string {
	if label, ok := productLabels[k]; ok {
		return label
	}
	return string(k)
}

func (k ServiceKey) String() string {
	return string(k)
}

func (k ServiceKey) Label() string {
	if label, ok := serviceLabels[k]; ok {
		return label
	}
	return string(k)
}

// Display is the form used inside order descriptions ("yikama kurutma").
func (k ServiceKey) Display() string {
	return strings.ReplaceAll(string(k), "_", " ")
}
