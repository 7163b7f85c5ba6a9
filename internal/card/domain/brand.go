package domain

// Brand is the card network label derived from the number prefix.
// It is advisory metadata and never takes part in the checksum.
type Brand string

const (
	BrandVisa            Brand = "Visa"
	BrandMastercard      Brand = "Mastercard"
	BrandAmericanExpress Brand = "American Express"
	BrandDiscover        Brand = "Discover"
	BrandDinersClub      Brand = "Diners Club"
	BrandOther           Brand = "Other"
	BrandUnknown         Brand = "Unknown"
)

// String returns the string representation of the brand.
func (b Brand) String() string {
	if b == "" {
		return string(BrandUnknown)
	}
	return string(b)
}
