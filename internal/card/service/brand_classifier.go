package service

import (
	"strings"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

type prefixClassifier struct{}

// NewBrandClassifier creates a Classifier that looks at the first one or two
// characters of the candidate. It never fails: malformed input still gets a label.
func NewBrandClassifier() Classifier {
	return &prefixClassifier{}
}

// Classify returns the brand for the candidate prefix, BrandUnknown for an empty
// candidate and BrandOther when no prefix matches.
func (p *prefixClassifier) Classify(candidate string) cardDomain.Brand {
	if candidate == "" {
		return cardDomain.BrandUnknown
	}

	switch {
	case strings.HasPrefix(candidate, "4"):
		return cardDomain.BrandVisa
	case hasAnyPrefix(candidate, "51", "52", "53", "54", "55"):
		return cardDomain.BrandMastercard
	case hasAnyPrefix(candidate, "34", "37"):
		return cardDomain.BrandAmericanExpress
	case hasAnyPrefix(candidate, "36", "38"):
		return cardDomain.BrandDinersClub
	case strings.HasPrefix(candidate, "6"):
		return cardDomain.BrandDiscover
	default:
		return cardDomain.BrandOther
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
