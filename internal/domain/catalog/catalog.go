package catalog

import (
	"sort"
	"strings"
)

var (
	defaultProductPrices = map[ProductKey]Money{
		ProductShirt:    TL(70),
		ProductTShirt:   TL(60),
		ProductSweater:  TL(90),
		ProductTrousers: TL(100),
		ProductDress:    TL(140),
		ProductCoat:     TL(220),
		ProductSuit:     TL(260),
		ProductSocks:    TL(20),
	}

	defaultServiceSurcharges = map[ServiceKey]Money{
		ServiceNone:        TL(0),
		ServiceWash:        TL(0),
		ServiceWashDry:     TL(10),
		ServiceWashDryIron: TL(30),
		ServiceIronOnly:    TL(40),
	}

	defaultBagPrice = TL(300)
)

// Override is one persisted (category, key, value) price setting.
type Override struct {
	Category Category
	Key      string
	Value    Money
}

// PriceCatalog is an immutable price snapshot. Its key set is fixed by the defaults it
// was derived from; overrides only replace values.
type PriceCatalog struct {
	products map[ProductKey]Money
	services map[ServiceKey]Money
	bag      Money
}

func Default() *PriceCatalog {
	return New(defaultProductPrices, defaultServiceSurcharges, defaultBagPrice)
}

func New(products map[ProductKey]Money, services map[ServiceKey]Money, bag Money) *PriceCatalog {
	c := &PriceCatalog{
		products: make(map[ProductKey]Money, len(products)),
		services: make(map[ServiceKey]Money, len(services)),
		bag:      bag,
	}
	for k, v := range products {
		c.products[k] = v
	}
	for k, v := range services {
		c.services[k] = v
	}
	return c
}

// Load merges persisted overrides onto defaults. Keys unknown to defaults are ignored.
func Load(defaults *PriceCatalog, overrides []Override) *PriceCatalog {
	c := New(defaults.products, defaults.services, defaults.bag)

	for _, o := range overrides {
		switch o.Category {
		case CategoryProduct:
			if _, ok := c.products[ProductKey(o.Key)]; ok {
				c.products[ProductKey(o.Key)] = o.Value
			}
		case CategoryService:
			if _, ok := c.services[ServiceKey(o.Key)]; ok {
				c.services[ServiceKey(o.Key)] = o.Value
			}
		case CategoryBag:
			if o.Key == BagKey {
				c.bag = o.Value
			}
		}
	}

	return c
}

// ProductPrice returns zero for unknown products.
func (c *PriceCatalog) ProductPrice(k ProductKey) Money {
	return c.products[k]
}

// ServiceSurcharge returns zero for unknown services.
func (c *PriceCatalog) ServiceSurcharge(k ServiceKey) Money {
	return c.services[k]
}

func (c *PriceCatalog) BagPrice() Money {
	return c.bag
}

func (c *PriceCatalog) UnitPrice(p ProductKey, s ServiceKey) Money {
	return c.ProductPrice(p).Add(c.ServiceSurcharge(s))
}

func (c *PriceCatalog) HasProduct(k ProductKey) bool {
	_, ok := c.products[k]
	return ok
}

func (c *PriceCatalog) HasService(k ServiceKey) bool {
	_, ok := c.services[k]
	return ok
}

func (c *PriceCatalog) ProductPrices() map[ProductKey]Money {
	out := make(map[ProductKey]Money, len(c.products))
	for k, v := range c.products {
		out[k] = v
	}
	return out
}

func (c *PriceCatalog) ServiceSurcharges() map[ServiceKey]Money {
	out := make(map[ServiceKey]Money, len(c.services))
	for k, v := range c.services {
		out[k] = v
	}
	return out
}

// Overrides lists every price as a persisted triple, sorted by category then key.
func (c *PriceCatalog) Overrides() []Override {
	out := make([]Override, 0, len(c.products)+len(c.services)+1)
	for k, v := range c.products {
		out = append(out, Override{Category: CategoryProduct, Key: string(k), Value: v})
	}
	for k, v := range c.services {
		out = append(out, Override{Category: CategoryService, Key: string(k), Value: v})
	}
	out = append(out, Override{Category: CategoryBag, Key: BagKey, Value: c.bag})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Update carries raw admin input keyed by product / service key.
type Update struct {
	Products map[string]string
	Services map[string]string
	Bag      string
}

// Apply returns a new catalog with every parsable field of u applied. Blank fields are
// left alone, unparsable ones are reported in rejected and otherwise ignored. The
// ServiceNone surcharge is never changed.
func (c *PriceCatalog) Apply(u Update) (next *PriceCatalog, rejected []string) {
	next = New(c.products, c.services, c.bag)

	for k := range next.products {
		raw := strings.TrimSpace(u.Products[string(k)])
		if raw == "" {
			continue
		}
		v, err := ParseMoney(raw)
		if err != nil {
			rejected = append(rejected, string(CategoryProduct)+"."+string(k))
			continue
		}
		next.products[k] = v
	}

	for k := range next.services {
		if k == ServiceNone {
			continue
		}
		raw := strings.TrimSpace(u.Services[string(k)])
		if raw == "" {
			continue
		}
		v, err := ParseMoney(raw)
		if err != nil {
			rejected = append(rejected, string(CategoryService)+"."+string(k))
			continue
		}
		next.services[k] = v
	}

	if raw := strings.TrimSpace(u.Bag); raw != "" {
		if v, err := ParseMoney(raw); err == nil {
			next.bag = v
		} else {
			rejected = append(rejected, string(CategoryBag)+"."+BagKey)
		}
	}

	sort.Strings(rejected)
	return next, rejected
}
