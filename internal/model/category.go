package model

// Category is a spending category label. The set of valid values is closed:
// the catalogue below plus CategoryOther.
type Category string

// Catalogue categories, in declaration order. The order is significant: when
// two categories match at the same tier, the earlier one wins.
const (
	CategoryTransport     Category = "Transporte"
	CategoryFood          Category = "Alimentação"
	CategoryHealth        Category = "Saúde"
	CategoryPersonalCare  Category = "Beleza/Cuidados Pessoais"
	CategoryShopping      Category = "Compras"
	CategoryEntertainment Category = "Entretenimento"
	CategorySubscriptions Category = "Assinaturas"
	CategoryHome          Category = "Casa"
	CategoryEducation     Category = "Educação"
	CategoryTransfers     Category = "Transferências"
	CategoryFitness       Category = "Academia/Esporte"
	CategoryInvestments   Category = "Investimentos"
	CategoryTaxes         Category = "Impostos/Taxas"

	// CategoryOther is the sentinel assigned when nothing matches.
	CategoryOther Category = "Outros"
)

var catalogue = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryHealth,
	CategoryPersonalCare,
	CategoryShopping,
	CategoryEntertainment,
	CategorySubscriptions,
	CategoryHome,
	CategoryEducation,
	CategoryTransfers,
	CategoryFitness,
	CategoryInvestments,
	CategoryTaxes,
}

// Catalogue returns the pattern-bearing categories in declaration order.
// The sentinel is not included.
func Catalogue() []Category {
	out := make([]Category, len(catalogue))
	copy(out, catalogue)
	return out
}

// AllCategories returns the catalogue followed by the sentinel.
func AllCategories() []Category {
	return append(Catalogue(), CategoryOther)
}

// ParseCategory resolves an exact category name. Only catalogue categories and
// the sentinel are accepted.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if c == CategoryOther || c.InCatalogue() {
		return c, true
	}
	return "", false
}

// InCatalogue reports whether c is one of the pattern-bearing categories.
func (c Category) InCatalogue() bool {
	for _, known := range catalogue {
		if c == known {
			return true
		}
	}
	return false
}

// IsOther reports whether c is the sentinel category.
func (c Category) IsOther() bool {
	return c == CategoryOther
}

func (c Category) String() string {
	return string(c)
}
