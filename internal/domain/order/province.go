package order

import (
	"strings"

	"github.com/agrox/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// Province identifies one of the sixteen Polish voivodeships. The
// symbolic name is what the code works with; each member carries a
// canonical lowercase display string used on the wire and in reports.
type Province string

const (
	ProvinceDolnoslaskie       Province = "DOLNOSLASKIE"
	ProvinceKujawskoPomorskie  Province = "KUJAWSKOPOMORSKIE"
	ProvinceLubelskie          Province = "LUBELSKIE"
	ProvinceLubuskie           Province = "LUBUSKIE"
	ProvinceLodzkie            Province = "LODZKIE"
	ProvinceMalopolskie        Province = "MALOPOLSKIE"
	ProvinceMazowieckie        Province = "MAZOWIECKIE"
	ProvinceOpolskie           Province = "OPOLSKIE"
	ProvincePodkarpackie       Province = "PODKARPACKIE"
	ProvincePodlaskie          Province = "PODLASKIE"
	ProvincePomorskie          Province = "POMORSKIE"
	ProvinceSlaskie            Province = "SLASKIE"
	ProvinceSwietokrzyskie     Province = "SWIETOKRZYSKIE"
	ProvinceWarminskoMazurskie Province = "WARMINSKOMAZURSKIE"
	ProvinceWielkopolskie      Province = "WIELKOPOLSKIE"
	ProvinceZachodniopomorskie Province = "ZACHODNIOPOMORSKIE"
)

// allProvinces is the closed set, in administrative order
var allProvinces = []Province{
	ProvinceDolnoslaskie,
	ProvinceKujawskoPomorskie,
	ProvinceLubelskie,
	ProvinceLubuskie,
	ProvinceLodzkie,
	ProvinceMalopolskie,
	ProvinceMazowieckie,
	ProvinceOpolskie,
	ProvincePodkarpackie,
	ProvincePodlaskie,
	ProvincePomorskie,
	ProvinceSlaskie,
	ProvinceSwietokrzyskie,
	ProvinceWarminskoMazurskie,
	ProvinceWielkopolskie,
	ProvinceZachodniopomorskie,
}

// provinceDisplay maps each member to its display value
var provinceDisplay = map[Province]string{
	ProvinceDolnoslaskie:       "dolnośląskie",
	ProvinceKujawskoPomorskie:  "kujawsko-pomorskie",
	ProvinceLubelskie:          "lubelskie",
	ProvinceLubuskie:           "lubuskie",
	ProvinceLodzkie:            "łódzkie",
	ProvinceMalopolskie:        "małopolskie",
	ProvinceMazowieckie:        "mazowieckie",
	ProvinceOpolskie:           "opolskie",
	ProvincePodkarpackie:       "podkarpackie",
	ProvincePodlaskie:          "podlaskie",
	ProvincePomorskie:          "pomorskie",
	ProvinceSlaskie:            "śląskie",
	ProvinceSwietokrzyskie:     "świętokrzyskie",
	ProvinceWarminskoMazurskie: "warmińsko-mazurskie",
	ProvinceWielkopolskie:      "wielkopolskie",
	ProvinceZachodniopomorskie: "zachodniopomorskie",
}

// provinceByDisplay is the reverse lookup, keyed by NFC-normalized display value
var provinceByDisplay = func() map[string]Province {
	m := make(map[string]Province, len(provinceDisplay))
	for p, display := range provinceDisplay {
		m[norm.NFC.String(display)] = p
	}
	return m
}()

// IsValid checks if the value is a member of the enumeration
func (p Province) IsValid() bool {
	_, ok := provinceDisplay[p]
	return ok
}

// String returns the symbolic name
func (p Province) String() string {
	return string(p)
}

// Display returns the canonical lowercase display string
func (p Province) Display() string {
	return provinceDisplay[p]
}

// ProvinceDisplayValues returns all display values in administrative order
func ProvinceDisplayValues() []string {
	values := make([]string, len(allProvinces))
	for i, p := range allProvinces {
		values[i] = provinceDisplay[p]
	}
	return values
}

// ParseProvince converts a display string into a Province. Input is
// NFC-normalized first: Polish diacritics may arrive decomposed and
// must still match the canonical form. The error message enumerates
// the valid display values.
func ParseProvince(input string) (Province, error) {
	p, ok := provinceByDisplay[norm.NFC.String(input)]
	if !ok {
		return "", shared.NewDomainError("INVALID_INPUT",
			"Invalid province. Allowed: "+strings.Join(ProvinceDisplayValues(), ", "))
	}
	return p, nil
}
