package selection

import "variant-matrix/internal/catalog"

func laptops() []catalog.Variant {
	return []catalog.Variant{
		{ID: "sg-512", Specs: catalog.SpecList{{Name: "Color", Value: "Space Gray"}, {Name: "Storage", Value: "512GB"}}},
		{ID: "sg-1tb", Specs: catalog.SpecList{{Name: "Color", Value: "Space Gray"}, {Name: "Storage", Value: "1TB"}}},
		{ID: "si-512", Specs: catalog.SpecList{{Name: "Color", Value: "Silver"}, {Name: "Storage", Value: "512GB"}}},
	}
}

func shirts() []catalog.Variant {
	return []catalog.Variant{
		{ID: "s-navy-m", Specs: catalog.SpecList{{Name: "Color", Value: "Navy Blue"}, {Name: "Size", Value: "M"}, {Name: "Fit", Value: "Slim"}}},
		{ID: "s-navy-l", Specs: catalog.SpecList{{Name: "Color", Value: "Navy Blue"}, {Name: "Size", Value: "L"}, {Name: "Fit", Value: "Regular"}}},
		{ID: "s-sky-m", Specs: catalog.SpecList{{Name: "Color", Value: "Sky Blue"}, {Name: "Size", Value: "M"}, {Name: "Fit", Value: "Regular"}}},
		{ID: "s-red-s", Specs: catalog.SpecList{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "S"}, {Name: "Fit", Value: "Slim"}}},
	}
}
